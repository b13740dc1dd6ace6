// Package config loads the settings of the wordrep command: built-in defaults, then an optional YAML
// file, then WORDREP_* environment variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "WORDREP_"

var validate = validator.New()

type Config struct {
	Strategy string  `yaml:"strategy" validate:"oneof=exact fast"`
	Seed     *uint64 `yaml:"seed"`
	// Minimize enables Hopcroft minimization after every exact combination step.
	Minimize    bool      `yaml:"minimize"`
	ExportPath  string    `yaml:"export_path"`
	MetricsPath string    `yaml:"metrics_path"`
	Log         LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Strategy: "exact",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load layers path (when non-empty) and the environment over Default and validates the result.
// A missing file is an error, since the path was asked for explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "STRATEGY"); ok {
		cfg.Strategy = strings.ToLower(v)
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %w", ErrInvalidConfig, envPrefix, err)
		}
		cfg.Seed = &seed
	}
	if v, ok := lookup(envPrefix + "MINIMIZE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sMINIMIZE: %w", ErrInvalidConfig, envPrefix, err)
		}
		cfg.Minimize = b
	}
	if v, ok := lookup(envPrefix + "EXPORT_PATH"); ok {
		cfg.ExportPath = v
	}
	if v, ok := lookup(envPrefix + "METRICS_PATH"); ok {
		cfg.MetricsPath = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	return nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
