package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Size       int    `yaml:"size" env:"GAME_SIZE" env-default:"3"`
	FirstMover string `yaml:"first-mover" env:"GAME_FIRST_MOVER" env-default:"random"`
	Seed       uint64 `yaml:"seed" env:"GAME_SEED" env-default:"0"`
	PlayerMark string `yaml:"player-mark" env:"GAME_PLAYER_MARK" env-default:"X"`
	BotMark    string `yaml:"bot-mark" env:"GAME_BOT_MARK" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	switch that.Game.FirstMover {
	case usecase.FirstMoverPlayer, usecase.FirstMoverBot, usecase.FirstMoverRandom:
	default:
		return fmt.Errorf("%w: unknown first mover %q", ErrInvalidConfig, that.Game.FirstMover)
	}

	if !entity.IsSupportedGridSize(that.Game.Size) {
		return fmt.Errorf("%w: game size %d, must be from %d to %d",
			ErrInvalidConfig, that.Game.Size, entity.MinGridSize, entity.MaxGridSize)
	}

	marks := entity.Marks{Player: that.Game.PlayerMark, Bot: that.Game.BotMark}
	if err := marks.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
