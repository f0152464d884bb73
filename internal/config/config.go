package config

import (
	"election/pkg/serrors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// FormatText renders records as labelled text blocks.
	FormatText = "text"
	// FormatJSON renders records as JSON objects.
	FormatJSON = "json"
)

const (
	// ColorAuto leaves colors to the terminal detection of fatih/color,
	// which also honours NO_COLOR.
	ColorAuto = "auto"
	// ColorAlways forces colors, even when stdout is not a terminal.
	ColorAlways = "always"
	// ColorNever disables colors.
	ColorNever = "never"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Output controls how records and validation results are printed
	Output struct {
		// Format is either "text" or "json"
		Format string `env:"OUTPUT_FORMAT" env-default:"text" yaml:"format"`
		// Color is "auto", "always" or "never". NO_COLOR is left to fatih/color.
		Color string `env:"OUTPUT_COLOR" env-default:"auto" yaml:"color"`
	} `yaml:"output"`
}

// Load reads the yaml config file at configPath, applying environment
// overrides. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot constrain by itself.
func (c *Config) Validate() error {
	if !ValidFormat(c.Output.Format) {
		return serrors.With(serrors.ErrInvalidArgument, "unknown output format %q", c.Output.Format)
	}
	if !ValidColor(c.Output.Color) {
		return serrors.With(serrors.ErrInvalidArgument, "unknown color mode %q", c.Output.Color)
	}

	return nil
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	return f == FormatText || f == FormatJSON
}

// ValidColor reports whether m is a supported color mode.
func ValidColor(m string) bool {
	return m == ColorAuto || m == ColorAlways || m == ColorNever
}
