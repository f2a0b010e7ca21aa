package checkers

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Position is one of the 32 playable dark squares, stored as its 1..32
// notation index. The zero value is not a valid square.
type Position uint8

// FromNotation returns the square with notation index n.
func FromNotation(n int) (Position, error) {
	if n < 1 || n > NumSquares {
		return 0, errors.Wrapf(errors.ErrOutOfBounds, "square %d", n)
	}
	return Position(n), nil
}

// FromCoordinates returns the square at file x, rank y.
func FromCoordinates(x, y int) (Position, error) {
	if x < 0 || y < 0 || x >= BoardSize || y >= BoardSize {
		return 0, errors.Wrapf(errors.ErrOutOfBounds, "coordinates (%d,%d)", x, y)
	}
	if (x+y)%2 == 0 {
		return 0, errors.Wrapf(errors.ErrWhiteSquare, "coordinates (%d,%d)", x, y)
	}
	return Position(y*4 + x/2 + 1), nil
}

// Notation returns the 1..32 index of the square.
func (p Position) Notation() int {
	return int(p)
}

// Coordinates returns the file and rank of the square.
func (p Position) Coordinates() (x, y int) {
	n := int(p) - 1
	y = n / 4
	x = n%4*2 + (y+1)%2
	return x, y
}

// Valid reports whether p names a playable square.
func (p Position) Valid() bool {
	return p >= 1 && p <= NumSquares
}

// Increment returns the square reached by adding (dx, dy) to p's coordinates.
func (p Position) Increment(dx, dy int) (Position, error) {
	x, y := p.Coordinates()
	return FromCoordinates(x+dx, y+dy)
}

// IsPromoting reports whether a man of colour c is crowned on this square.
func (p Position) IsPromoting(c Colour) bool {
	if c == White {
		return p >= 1 && p <= 4
	}
	return p >= 29 && p <= NumSquares
}

// String returns the notation index.
func (p Position) String() string {
	return strconv.Itoa(int(p))
}

// CoordinateString returns the square as "(x,y)".
func (p Position) CoordinateString() string {
	x, y := p.Coordinates()
	return fmt.Sprintf("(%d,%d)", x, y)
}
