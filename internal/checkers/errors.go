package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// SquareError reports a rule violation on a particular square. Err is one
// of the rule sentinels (ErrEmpty, ErrOccupied, ErrNotKing).
type SquareError struct {
	Err    error
	Square Position
}

// Error returns the rule violation with the square it happened on.
func (e *SquareError) Error() string {
	return fmt.Sprintf("square %s: %v", e.Square, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// CaptureError reports an attempt to jump a piece of the mover's own colour.
type CaptureError struct {
	From   Position
	Target Position
	Colour Colour
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("%s piece on %s cannot jump %s: %v", e.Colour, e.From, e.Target, errors.ErrSameColorCapture)
}

func (e *CaptureError) Unwrap() error {
	return errors.ErrSameColorCapture
}

// ColourLimitError reports an insertion past the per-colour piece limit.
type ColourLimitError struct {
	Colour Colour
}

func (e *ColourLimitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Colour, errors.ErrColorLimit)
}

func (e *ColourLimitError) Unwrap() error {
	return errors.ErrColorLimit
}

func squareError(err error, pos Position) error {
	return &SquareError{Err: err, Square: pos}
}
