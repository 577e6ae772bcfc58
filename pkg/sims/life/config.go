package life

import (
	"strconv"

	"counterlife/pkg/core"
)

// Config holds the registry parameters for the Life engines.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Seed     int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, CellSize: 1, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		u, err := New(c.Width, c.Height, c.CellSize, WithEntropy(core.NewRNG(c.Seed)))
		if err != nil {
			return nil, err
		}
		return u, nil
	})
	core.Register("life-naive", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		ref, err := NewReference(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		ref.Reset(c.Seed)
		return ref, nil
	})
}
