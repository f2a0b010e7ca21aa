package checkers

import "github.com/samber/lo"

// Move records one complete turn for one piece: the piece before and after
// the move and the squares of every piece it captured, in jump order.
type Move struct {
	old      Piece
	new      Piece
	captures []Position
}

// NewMove creates a move record. Duplicate capture squares are dropped.
func NewMove(before, after Piece, captures ...Position) Move {
	return Move{
		old:      before,
		new:      after,
		captures: lo.Uniq(captures),
	}
}

// Old returns the piece before the move.
func (m Move) Old() Piece {
	return m.old
}

// New returns the piece after the move, crowned if it promoted.
func (m Move) New() Piece {
	return m.new
}

// From returns the starting square.
func (m Move) From() Position {
	return m.old.Position
}

// To returns the final square.
func (m Move) To() Position {
	return m.new.Position
}

// Captures returns a copy of the captured squares.
func (m Move) Captures() []Position {
	return append([]Position(nil), m.captures...)
}

// IsCapture reports whether the move captures at least one piece.
func (m Move) IsCapture() bool {
	return len(m.captures) > 0
}

// Promotes reports whether a man is crowned by this move.
func (m Move) Promotes() bool {
	return !m.old.King && m.new.King
}

// Equal reports whether two moves have the same pieces and the same set of
// captured squares, regardless of capture order.
func (m Move) Equal(other Move) bool {
	if m.old != other.old || m.new != other.new {
		return false
	}
	if len(m.captures) != len(other.captures) {
		return false
	}
	return lo.Every(m.captures, other.captures)
}

// String returns the move in collapsed numeric notation.
func (m Move) String() string {
	return m.Notation(NumericNotation, true)
}
