package life

import (
	"crypto/rand"
	"io"
	"log/slog"

	"counterlife/pkg/palette"
)

type settings struct {
	entropy io.Reader
	palette palette.Map
	logger  *slog.Logger
}

func defaultSettings() settings {
	return settings{entropy: rand.Reader, palette: palette.Gradient}
}

// Option customizes New.
type Option func(*settings)

// WithEntropy sets the byte source used to seed the grid. A nil source
// behaves like a failing one and yields an all-dead grid.
func WithEntropy(r io.Reader) Option {
	return func(s *settings) { s.entropy = r }
}

// WithPalette sets the colour map for live cells.
func WithPalette(m palette.Map) Option {
	return func(s *settings) {
		if m != nil {
			s.palette = m
		}
	}
}

// WithLogger overrides the package-wide logger from core.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}
