package checkers

import (
	"github.com/samber/lo"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// directionSearch produces the candidates of one piece in one direction.
type directionSearch func(p Piece, b *Board, dx, dy int) ([]Move, error)

// PossibleMoves returns every complete move of p on b, ignoring what other
// pieces of the same colour could do. Captures take precedence: when p can
// jump, only capture chains are returned, each followed until no further
// jump is available. Every branch of every fork is reported.
func (p Piece) PossibleMoves(b *Board) []Move {
	captures := collect(p, b, captureMoves)
	if len(captures) == 0 {
		return collect(p, b, simpleMoves)
	}

	var moves []Move
	for _, capture := range captures {
		next := b.appliedMoveUnchecked(capture)
		// The landing square is occupied by construction.
		moved, _ := next.Get(capture.To())

		continuations := lo.Filter(moved.PossibleMoves(next), func(m Move, _ int) bool {
			return m.IsCapture()
		})
		if len(continuations) == 0 {
			moves = append(moves, capture)
			continue
		}
		for _, c := range continuations {
			moves = append(moves, NewMove(p, c.new, lo.Union(capture.captures, c.captures)...))
		}
	}
	return moves
}

// collect runs search in all four directions. A failing direction
// contributes nothing.
func collect(p Piece, b *Board, search directionSearch) []Move {
	var moves []Move
	for _, d := range directions {
		found, err := search(p, b, d[0], d[1])
		if err != nil {
			continue
		}
		moves = append(moves, found...)
	}
	return moves
}

// simpleMoves returns the non-capturing moves of p in direction (dx, dy).
// A man takes a single forward step; a king slides over every empty square
// until blocked, each square being a separate destination.
func simpleMoves(p Piece, b *Board, dx, dy int) ([]Move, error) {
	if !p.King && dy != p.Colour.Forward() {
		return nil, squareError(errors.ErrNotKing, p.Position)
	}

	first, err := p.Position.Increment(dx, dy)
	if err != nil {
		return nil, err
	}
	if !b.IsEmpty(first) {
		return nil, squareError(errors.ErrOccupied, first)
	}

	moves := []Move{NewMove(p, p.MovedTo(first))}
	if p.King {
		moves = append(moves, slide(p, b, first, dx, dy)...)
	}
	return moves, nil
}

// captureMoves returns the single jumps of p in direction (dx, dy). A man
// jumps an adjacent piece; a king may first cross any number of empty
// squares. A king may land on any empty square beyond the jumped piece.
func captureMoves(p Piece, b *Board, dx, dy int) ([]Move, error) {
	target, err := p.Position.Increment(dx, dy)
	if err != nil {
		return nil, err
	}
	victim, occupied := b.Get(target)
	for p.King && !occupied {
		if target, err = target.Increment(dx, dy); err != nil {
			return nil, err
		}
		victim, occupied = b.Get(target)
	}

	if !occupied {
		return nil, squareError(errors.ErrEmpty, target)
	}
	if victim.Colour == p.Colour {
		return nil, &CaptureError{From: p.Position, Target: target, Colour: p.Colour}
	}

	landing, err := target.Increment(dx, dy)
	if err != nil {
		return nil, err
	}
	if !b.IsEmpty(landing) {
		return nil, squareError(errors.ErrOccupied, landing)
	}

	moves := []Move{NewMove(p, p.MovedTo(landing), target)}
	if p.King {
		for _, m := range slide(p, b, landing, dx, dy) {
			moves = append(moves, NewMove(p, m.new, target))
		}
	}
	return moves, nil
}

// slide returns a move to each empty square past from in direction (dx, dy).
func slide(p Piece, b *Board, from Position, dx, dy int) []Move {
	var moves []Move
	for {
		next, err := from.Increment(dx, dy)
		if err != nil || !b.IsEmpty(next) {
			return moves
		}
		moves = append(moves, NewMove(p, p.MovedTo(next)))
		from = next
	}
}
