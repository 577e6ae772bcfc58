package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction marks invalid or overflowing grid dimensions.
	ErrConstruction = errors.New("invalid grid dimensions")
	// ErrEntropySource marks a failed read from the seed source.
	ErrEntropySource = errors.New("entropy source unavailable")
	// ErrIndexOutOfBounds marks a Get/Set outside the grid.
	ErrIndexOutOfBounds = errors.New("cell index out of bounds")
)

// IndexError is the panic value raised for out-of-range cell access.
type IndexError struct {
	X, Y int
	Size Size
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d grid", ErrIndexOutOfBounds, e.X, e.Y, e.Size.W, e.Size.H)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// EntropyError records why seeding fell back to an all-dead grid.
type EntropyError struct {
	Want int
	Err  error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%v: reading %d bytes: %v", ErrEntropySource, e.Want, e.Err)
}

func (e *EntropyError) Unwrap() []error { return []error{ErrEntropySource, e.Err} }

// DimsError describes rejected construction parameters.
type DimsError struct {
	W, H, Scale int
	Reason      string
}

func (e *DimsError) Error() string {
	return fmt.Sprintf("%v: %dx%d scale %d: %s", ErrConstruction, e.W, e.H, e.Scale, e.Reason)
}

func (e *DimsError) Unwrap() error { return ErrConstruction }
