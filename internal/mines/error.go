package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrGameOver             = errors.New("game is over")
)

type ConfigurationError struct {
	Params GameParams
	reason string
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidConfiguration, e.Params, e.reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

type BoundsError struct {
	Point
	Rows, Columns int
}

// [BoundsError] implements [error]
func (e *BoundsError) Error() string {
	return fmt.Sprintf(
		"%s: (%d, %d) on a %dx%d board",
		ErrOutOfBounds, e.Row, e.Column, e.Rows, e.Columns,
	)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
