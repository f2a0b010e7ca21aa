// Package checkers implements the rules of checkers (draughts) on an 8x8
// board: square encoding, move and capture search, forced capture, king
// promotion and move application.
package checkers

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a man of this colour. White men move
// towards rank 0, black men towards rank 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Board dimensions and piece limits.
const (
	BoardSize   = 8
	NumSquares  = BoardSize * BoardSize / 2
	MaxPerColor = 12
)

// Template codes used by BuilderFromTemplate and Board.Template.
const (
	CodeEmpty     = 0
	CodeWhiteMan  = 1
	CodeBlackMan  = 2
	CodeWhiteKing = 3
	CodeBlackKing = 4
)

// Template is an 8x8 grid of piece codes indexed [rank][file]. Row 0 is the
// rank farthest from the viewer, where white men promote.
type Template [BoardSize][BoardSize]int

// InitialTemplate is the standard starting layout.
var InitialTemplate = Template{
	{0, 2, 0, 2, 0, 2, 0, 2},
	{2, 0, 2, 0, 2, 0, 2, 0},
	{0, 2, 0, 2, 0, 2, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 1, 0, 1, 0, 1, 0},
	{0, 1, 0, 1, 0, 1, 0, 1},
	{1, 0, 1, 0, 1, 0, 1, 0},
}

// directions are the four diagonals as (dx, dy) deltas.
var directions = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
