package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/cli"
)

// RunApp - runs a terminal session until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	marks := entity.Marks{Player: conf.Game.PlayerMark, Bot: conf.Game.BotMark}
	if err := marks.Validate(); err != nil {
		return fmt.Errorf("invalid marks: %w", err)
	}

	rnd := random.NewFromSeed(conf.Game.Seed)
	gameManager := usecase.NewGameManager(logger.With("component", "game-manager"), rnd)
	terminal := cli.New(logger.With("component", "terminal"), gameManager, marks, conf.Game.Size, conf.Game.FirstMover)

	log.Info("Starting terminal session", "size", conf.Game.Size, "firstMover", conf.Game.FirstMover)

	if err := terminal.Run(ctx, in, out); err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	log.Info("Terminal session finished")

	return nil
}
