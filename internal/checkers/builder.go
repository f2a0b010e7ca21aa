package checkers

import "github.com/lgbarn/checkers-go/internal/errors"

// Builder stages a board while enforcing the placement rules: at most twelve
// pieces per colour, one piece per square and no man on its own promotion
// row.
type Builder struct {
	board Board
	white int
	black int
}

// EmptyBuilder returns a builder with no pieces.
func EmptyBuilder() *Builder {
	return &Builder{}
}

// DefaultBuilder returns a builder holding the standard starting layout.
func DefaultBuilder() *Builder {
	b, err := BuilderFromTemplate(InitialTemplate)
	if err != nil {
		panic("checkers: initial template rejected: " + err.Error())
	}
	return b
}

// BuilderFromTemplate inserts a piece for every non-zero code in t: odd codes
// are white, even codes black, codes above 2 kings. Light squares must be
// zero. The first rejected insertion is returned.
func BuilderFromTemplate(t Template) (*Builder, error) {
	b := EmptyBuilder()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			code := t[y][x]
			if code == CodeEmpty {
				continue
			}
			if code < 0 || code > CodeBlackKing {
				return nil, errors.Wrapf(errors.ErrInvalidTemplate, "code %d at (%d,%d)", code, x, y)
			}
			pos, err := FromCoordinates(x, y)
			if err != nil {
				return nil, err
			}
			colour := Black
			if code%2 == 1 {
				colour = White
			}
			if err := b.Insert(NewPiece(code > CodeBlackMan, colour, pos)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Insert places piece on its square.
func (b *Builder) Insert(piece Piece) error {
	if !piece.Position.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "square %d", piece.Position)
	}
	if b.count(piece.Colour) >= MaxPerColor {
		return &ColourLimitError{Colour: piece.Colour}
	}
	if !b.board.IsEmpty(piece.Position) {
		return squareError(errors.ErrOccupied, piece.Position)
	}
	if !piece.King && piece.Position.IsPromoting(piece.Colour) {
		return squareError(errors.ErrNotKing, piece.Position)
	}

	b.board.set(piece)
	b.adjust(piece.Colour, 1)
	return nil
}

// Remove takes the piece off pos.
func (b *Builder) Remove(pos Position) error {
	piece, ok := b.board.Get(pos)
	if !ok {
		return squareError(errors.ErrEmpty, pos)
	}
	b.board.clear(pos)
	b.adjust(piece.Colour, -1)
	return nil
}

// Replace swaps the piece on piece.Position for piece. On failure the
// builder is left unchanged.
func (b *Builder) Replace(piece Piece) error {
	saved := *b
	if err := b.Remove(piece.Position); err != nil {
		return err
	}
	if err := b.Insert(piece); err != nil {
		*b = saved
		return err
	}
	return nil
}

// Count returns the number of staged pieces of colour c.
func (b *Builder) Count(c Colour) int {
	return b.count(c)
}

// Build returns the finished board.
func (b *Builder) Build() *Board {
	board := b.board
	return &board
}

func (b *Builder) count(c Colour) int {
	if c == White {
		return b.white
	}
	return b.black
}

func (b *Builder) adjust(c Colour, delta int) {
	if c == White {
		b.white += delta
	} else {
		b.black += delta
	}
}
