package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// main - is the entry point of the application. It builds the command and runs it.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		size       int
		firstMover string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe against a rule-based bot in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				conf.Game.Size = size
			}
			if flags.Changed("first") {
				conf.Game.FirstMover = firstMover
			}
			if flags.Changed("seed") {
				conf.Game.Seed = seed
			}

			if err = conf.Validate(); err != nil {
				return err
			}

			logger := initLogger(conf, cmd.ErrOrStderr())

			if err = app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")
	// no flag defaults, an unset flag keeps the config value
	cmd.Flags().IntVar(&size, "size", 0, "board size from 3 to 5, overrides game.size")
	cmd.Flags().StringVar(&firstMover, "first", "", "who opens each round: player, bot or random, overrides game.first-mover")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the bot's random moves, 0 seeds from the clock, overrides game.seed")

	return cmd
}

// default config location.
func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

// initialize logger. Logs go to w so they stay apart from the board.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
