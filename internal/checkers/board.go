package checkers

import (
	"strconv"
	"strings"
)

// cell is one square of the grid.
type cell struct {
	piece    Piece
	occupied bool
}

// Board is the 8x8 grid. Light squares are never occupied. Boards are
// small fixed-size values; Copy is a plain value copy.
type Board struct {
	// grid[rank][file], rank 0 at the top.
	grid [BoardSize][BoardSize]cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on pos and whether the square is occupied.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	x, y := pos.Coordinates()
	c := b.grid[y][x]
	return c.piece, c.occupied
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	_, ok := b.Get(pos)
	return !ok
}

// set places piece on its own square.
func (b *Board) set(piece Piece) {
	x, y := piece.Position.Coordinates()
	b.grid[y][x] = cell{piece: piece, occupied: true}
}

// clear empties pos.
func (b *Board) clear(pos Position) {
	x, y := pos.Coordinates()
	b.grid[y][x] = cell{}
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns the pieces of colour c in square order.
func (b *Board) Pieces(c Colour) []Piece {
	var pieces []Piece
	for n := 1; n <= NumSquares; n++ {
		if piece, ok := b.Get(Position(n)); ok && piece.Colour == c {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// Count returns the number of pieces of colour c.
func (b *Board) Count(c Colour) int {
	return len(b.Pieces(c))
}

// Template returns the board as a grid of piece codes.
func (b *Board) Template() Template {
	var t Template
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if c := b.grid[y][x]; c.occupied {
				t[y][x] = c.piece.Code()
			}
		}
	}
	return t
}

// Key returns one code per playable square in notation order.
func (b *Board) Key() [NumSquares]byte {
	var key [NumSquares]byte
	for n := 1; n <= NumSquares; n++ {
		if piece, ok := b.Get(Position(n)); ok {
			key[n-1] = byte(piece.Code())
		}
	}
	return key
}

// String draws the board with rank labels on the left and file labels below.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.grid {
		sb.WriteString(strconv.Itoa(BoardSize - y))
		sb.WriteByte(' ')
		for _, c := range row {
			if c.occupied {
				sb.WriteString(c.piece.Glyph())
			} else {
				sb.WriteByte('_')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := 1; x <= BoardSize; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
