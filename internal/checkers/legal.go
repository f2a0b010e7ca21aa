package checkers

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// AllPossibleMoves returns the moves of every piece of colour c without the
// board-wide forced-capture rule. Most callers want LegalMoves.
func (b *Board) AllPossibleMoves(c Colour) []Move {
	var moves []Move
	for _, piece := range b.Pieces(c) {
		moves = append(moves, piece.PossibleMoves(b)...)
	}
	return moves
}

// LegalMoves returns the moves colour c may play. If any piece can capture,
// only capturing moves are legal.
func (b *Board) LegalMoves(c Colour) []Move {
	return FilterForced(b.AllPossibleMoves(c))
}

// HasLegalMoves returns true if colour c has at least one legal move.
func (b *Board) HasLegalMoves(c Colour) bool {
	for _, piece := range b.Pieces(c) {
		if len(piece.PossibleMoves(b)) > 0 {
			return true
		}
	}
	return false
}

// FilterForced narrows moves to the capturing ones when at least one move
// captures, and returns moves unchanged otherwise.
func FilterForced(moves []Move) []Move {
	captures := lo.Filter(moves, func(m Move, _ int) bool {
		return m.IsCapture()
	})
	if len(captures) == 0 {
		return moves
	}
	if len(captures) < len(moves) {
		log.Debug().Int("captures", len(captures)).Int("dropped", len(moves)-len(captures)).Msg("forced-capture")
	}
	return captures
}
