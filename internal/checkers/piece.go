package checkers

// Piece is a man or king of one colour standing on a square. Pieces are
// plain values; each board cell holds its own copy and the embedded Position
// always equals the cell the piece occupies.
type Piece struct {
	King     bool
	Colour   Colour
	Position Position
}

// NewPiece creates a piece.
func NewPiece(king bool, colour Colour, pos Position) Piece {
	return Piece{King: king, Colour: colour, Position: pos}
}

// MovedTo returns the piece as it stands after moving to pos, crowned if pos
// is on its promotion row. A king is never demoted.
func (p Piece) MovedTo(pos Position) Piece {
	return Piece{
		King:     p.King || pos.IsPromoting(p.Colour),
		Colour:   p.Colour,
		Position: pos,
	}
}

// Code returns the template code of the piece.
func (p Piece) Code() int {
	switch {
	case p.Colour == White && p.King:
		return CodeWhiteKing
	case p.Colour == White:
		return CodeWhiteMan
	case p.King:
		return CodeBlackKing
	default:
		return CodeBlackMan
	}
}

// Glyph returns the single character used to draw the piece.
func (p Piece) Glyph() string {
	switch p.Code() {
	case CodeWhiteMan:
		return "●"
	case CodeWhiteKing:
		return "◉"
	case CodeBlackMan:
		return "◯"
	default:
		return "◎"
	}
}

// String returns a short description such as "White king on 14".
func (p Piece) String() string {
	kind := "man"
	if p.King {
		kind = "king"
	}
	return p.Colour.String() + " " + kind + " on " + p.Position.String()
}
