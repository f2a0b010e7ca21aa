// Package errors provides sentinel errors for the checkers rules engine.
// Position encoding failures and rule violations are separate families so
// callers can tell a malformed square from an illegal placement with
// errors.Is().
package errors

import (
	"errors"
	"fmt"
)

// Encoding errors, returned when a square number or coordinate pair does not
// name one of the 32 playable squares.
var (
	// ErrOutOfBounds indicates a notation index outside 1..32 or a
	// coordinate outside the 8x8 grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrWhiteSquare indicates coordinates of a light, unplayable square.
	ErrWhiteSquare = errors.New("position is a white square")
)

// Rule errors.
var (
	// ErrEmpty indicates a square expected to be occupied is empty.
	ErrEmpty = errors.New("square is empty")

	// ErrOccupied indicates a square expected to be empty is occupied.
	ErrOccupied = errors.New("square is occupied")

	// ErrColorLimit indicates an insertion past twelve pieces of one colour.
	ErrColorLimit = errors.New("colour already has twelve pieces")

	// ErrSameColorCapture indicates an attempt to jump a piece of one's own colour.
	ErrSameColorCapture = errors.New("cannot capture own piece")

	// ErrNotKing indicates a man stepping backwards or a man placed on
	// its own promotion row.
	ErrNotKing = errors.New("piece is not a king")
)

// Input errors.
var (
	// ErrIllegalMove indicates move text that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates move text that matches several legal moves.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidTemplate indicates a board template that is not 8x8 or holds
	// unknown piece codes.
	ErrInvalidTemplate = errors.New("invalid board template")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
