package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options are startup parameters read from the environment
type Options struct {
	LogLevel     string  `env:"ALCOCALC_LOG_LEVEL" envDefault:"info"`
	Language     string  `env:"ALCOCALC_LANG"`
	WindowWidth  float32 `env:"ALCOCALC_WINDOW_WIDTH" envDefault:"380"`
	WindowHeight float32 `env:"ALCOCALC_WINDOW_HEIGHT" envDefault:"420"`
}

// Minimum window dimensions
const (
	MinWindowWidth  float32 = 240
	MinWindowHeight float32 = 300
)

// DefaultOptions returns the options used when the environment is empty
func DefaultOptions() Options {
	return Options{
		LogLevel:     "info",
		WindowWidth:  380,
		WindowHeight: 420,
	}
}

// LoadOptions parses Options from environment variables
func LoadOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return DefaultOptions(), fmt.Errorf("parse env: %w", err)
	}
	if opts.WindowWidth < MinWindowWidth {
		opts.WindowWidth = MinWindowWidth
	}
	if opts.WindowHeight < MinWindowHeight {
		opts.WindowHeight = MinWindowHeight
	}
	return opts, nil
}
