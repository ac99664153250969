package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	Env        string        `env:"ENV" envDefault:"development"`
	LogLevel   string        `env:"LOGLEVEL"`
	RosterFile string        `env:"POKEBATTLE_ROSTER"`
	TurnDelay  time.Duration `env:"POKEBATTLE_TURN_DELAY" envDefault:"1s"`
	PrintDelay time.Duration `env:"POKEBATTLE_PRINT_DELAY" envDefault:"50ms"`
	Seed       uint64        `env:"POKEBATTLE_SEED" envDefault:"0"`
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TurnDelay < 0 {
		return fmt.Errorf("POKEBATTLE_TURN_DELAY must not be negative, got %s", c.TurnDelay)
	}
	if c.PrintDelay < 0 {
		return fmt.Errorf("POKEBATTLE_PRINT_DELAY must not be negative, got %s", c.PrintDelay)
	}
	return nil
}

// SetupLogging configures zerolog output and log level. Logs go to stderr
// and share the terminal with the battle screen, so the default level is
// warn.
func SetupLogging(cfg *Config) {
	if cfg.Production() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning", "":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to warn.", levelStr)
	}
}
