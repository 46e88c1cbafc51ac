package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the two ways a roll can be rejected.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidPins is returned when a roll is outside [0,10].
	ErrInvalidPins = errors.New("bowling: pins must be between 0 and 10")

	// ErrGameComplete is returned when a roll is submitted after the
	// tenth frame is finished.
	ErrGameComplete = errors.New("bowling: no more rolls allowed, game is complete")
)

// RollError describes a rejected roll.
type RollError struct {
	// Pins is the value that was submitted
	Pins int

	// Frame is the 1-based frame the roll would have belonged to
	Frame int

	// Err is ErrInvalidPins or ErrGameComplete
	Err error
}

func (e *RollError) Error() string {
	return fmt.Sprintf("roll %d in frame %d: %v", e.Pins, e.Frame, e.Err)
}

func (e *RollError) Unwrap() error {
	return e.Err
}
