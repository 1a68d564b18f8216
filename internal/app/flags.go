package app

import (
	"flag"
	"time"

	"snake/internal/core"
	"snake/internal/snake"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	Tick     time.Duration
	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := snake.DefaultConfig()
	return &Config{
		Width:    def.BoardWidth,
		Height:   def.BoardHeight,
		Tick:     core.DefaultTickInterval,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "board height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation step interval")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
}

// Engine returns the engine configuration.
func (c *Config) Engine() snake.Config {
	return snake.Config{BoardWidth: c.Width, BoardHeight: c.Height, Seed: c.Seed}
}
