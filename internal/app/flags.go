package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"counterlife/pkg/palette"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	GPS      int
	Seed     int64
	Palette  string
	LogLevel string
	HUD      bool
	Stats    time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    256,
		Height:   256,
		Scale:    3,
		TPS:      60,
		GPS:      30,
		Palette:  "gradient",
		LogLevel: "info",
		HUD:      true,
		Stats:    10 * time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (1-12)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 = OS entropy)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "live cell colours: "+strings.Join(palette.Names(), ", "))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the statistics overlay")
	fs.DurationVar(&c.Stats, "stats-every", c.Stats, "performance report interval")
}

// Validate rejects values the controller cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale < MinScale || c.Scale > MaxScale {
		return fmt.Errorf("scale %d outside %d..%d", c.Scale, MinScale, MaxScale)
	}
	if _, err := palette.ByName(c.Palette, 0); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a -log-level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
