package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Runs a seeded session", func(t *testing.T) {
		// Given: a bot-first game with a fixed seed
		conf := &config.Config{
			LogLevel: "info",
			Game:     config.Game{Size: 3, FirstMover: "bot", Seed: 99, PlayerMark: "X", BotMark: "O"},
		}
		var out bytes.Buffer

		// When: the app runs and the player leaves right away
		err := RunApp(context.Background(), logger, conf, strings.NewReader("q\n"), &out)

		// Then: the bot opened and the session ended
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Bot O takes")
		assert.Contains(t, out.String(), "Bye!")
	})

	t.Run("Rejects identical marks", func(t *testing.T) {
		conf := &config.Config{
			LogLevel: "info",
			Game:     config.Game{Size: 3, FirstMover: "player", PlayerMark: "X", BotMark: "X"},
		}

		err := RunApp(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, entity.ErrInvalidMarks)
	})
}
