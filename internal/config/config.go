// Package config loads runtime settings from an optional YAML file,
// a .env file, and MATHBLITZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/mathblitz/internal/answer"
)

// EnvPrefix is prepended to every environment override, e.g.
// MATHBLITZ_ANSWER_MODE or MATHBLITZ_LOG_LEVEL.
const EnvPrefix = "MATHBLITZ"

// Config is the merged runtime configuration.
type Config struct {
	// AnswerMode is the initial answer mode: multiple, essay, or random.
	AnswerMode string `mapstructure:"answer_mode"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	Log Log `mapstructure:"log"`
}

// Log configures the rotating file logger.
type Log struct {
	// File is the log path. Empty disables logging.
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		AnswerMode: string(answer.ModeMultiple),
		Log: Log{
			File:       DefaultLogPath(),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads configuration with this precedence: environment, then the
// file at path (or config.yaml in the default config directory when path
// is empty), then defaults. A .env file in the working directory is
// loaded into the environment first. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	v := viper.New()
	def := Default()
	v.SetDefault("answer_mode", def.AnswerMode)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir := DefaultConfigDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if _, err := answer.ParseMode(c.AnswerMode); err != nil {
		errs = append(errs, fmt.Errorf("answer_mode: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB))
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log.max_backups cannot be negative, got %d", c.Log.MaxBackups))
	}
	return errors.Join(errs...)
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/mathblitz, falling back to
// ~/.config/mathblitz. It returns "" when no home directory is known.
func DefaultConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mathblitz")
}

// DefaultLogPath returns $XDG_STATE_HOME/mathblitz/mathblitz.log, falling
// back to ~/.local/state. It returns "" when no home directory is known.
func DefaultLogPath() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "mathblitz", "mathblitz.log")
}
