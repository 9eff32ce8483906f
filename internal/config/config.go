package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const relativeConfigPath = "tictactoe/config.yml"

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	Display  Display `yaml:"display"`
	Prompt   string  `yaml:"prompt" env:"TTT_PROMPT" env-default:"> "`
}

type Display struct {
	Order   string `yaml:"order" env:"TTT_DISPLAY_ORDER" env-default:"ascending"`
	NoColor bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
}

// Load - load configuration from path, or defaults and environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate returns the config file from the XDG config directories, or "" when there is none.
func Locate() string {
	path, err := xdg.SearchConfigFile(relativeConfigPath)
	if err != nil {
		return ""
	}

	if _, err = os.Stat(path); err != nil {
		return ""
	}

	return path
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if _, err := that.Display.DisplayOrder(); err != nil {
		return err
	}

	return nil
}

func (that *Display) DisplayOrder() (entity.DisplayOrder, error) {
	order, err := entity.ParseDisplayOrder(that.Order)
	if err != nil {
		return entity.Ascending, fmt.Errorf("invalid display order: %w", err)
	}

	return order, nil
}
