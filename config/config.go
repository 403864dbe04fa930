// Package config loads start-time settings from the environment and the
// command line. Board dimensions and the shape catalog are fixed in the game
// package and are not configurable.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/blockfall/game"
)

// Config holds the settings shared by both frontends.
type Config struct {
	// TickInterval is the gravity period.
	TickInterval time.Duration `env:"BLOCKFALL_TICK_INTERVAL" envDefault:"300ms"`
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed  int64 `env:"BLOCKFALL_SEED"`
	Debug bool  `env:"BLOCKFALL_DEBUG"`
	// TPS is the number of frames per second the frontend updates at.
	TPS int `env:"BLOCKFALL_TPS" envDefault:"60"`
	// Bindings maps frontend key names to action names, for example
	// "A:left,D:right". They are added on top of the arrow keys.
	Bindings map[string]string `env:"BLOCKFALL_BINDINGS"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TickInterval: 300 * time.Millisecond,
		TPS:          60,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags to c. Values already in c become
// the flag defaults, so flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Interval between gravity ticks.")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for the piece sequence (0 for random).")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Frontend updates per second.")
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %s", c.TickInterval))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.ActionBindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ActionBindings resolves the action names of Bindings.
func (c Config) ActionBindings() (map[string]game.Action, error) {
	bindings := make(map[string]game.Action, len(c.Bindings))
	for key, name := range c.Bindings {
		action, err := game.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		bindings[key] = action
	}
	return bindings, nil
}

// String renders the settings for the start-up log line.
func (c Config) String() string {
	return fmt.Sprintf("tick=%s seed=%d debug=%t tps=%d bindings=%d",
		c.TickInterval, c.Seed, c.Debug, c.TPS, len(c.Bindings))
}
