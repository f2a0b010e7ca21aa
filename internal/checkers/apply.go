package checkers

import (
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// ApplyMove plays m on b. The moving piece's square and every captured
// square must be occupied; all of them are checked before the board is
// touched, so a rejected move leaves b unchanged.
//
// ApplyMove trusts that m was generated for b. A move taken from another
// board may pass the checks and still leave a nonsensical position.
func (b *Board) ApplyMove(m Move) error {
	if err := b.checkMove(m); err != nil {
		log.Debug().Err(err).Str("move", m.String()).Msg("apply-rejected")
		return err
	}
	b.applyMoveUnchecked(m)
	return nil
}

// AppliedMove returns a copy of b with m played, leaving b untouched.
func (b *Board) AppliedMove(m Move) (*Board, error) {
	next := b.Copy()
	if err := next.ApplyMove(m); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *Board) checkMove(m Move) error {
	if !m.From().Valid() || !m.To().Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "move %d-%d", m.From(), m.To())
	}
	if b.IsEmpty(m.From()) {
		return squareError(errors.ErrEmpty, m.From())
	}
	for _, pos := range m.captures {
		if !pos.Valid() {
			return errors.Wrapf(errors.ErrOutOfBounds, "capture on %d", pos)
		}
		if b.IsEmpty(pos) {
			return squareError(errors.ErrEmpty, pos)
		}
	}
	return nil
}

// applyMoveUnchecked writes m without any checks. Only the capture search
// calls it, on boards it derived itself; the caller guarantees every square
// named by m is valid and the moving piece is present.
func (b *Board) applyMoveUnchecked(m Move) {
	b.clear(m.From())
	b.set(m.new)
	for _, pos := range m.captures {
		b.clear(pos)
	}
}

// appliedMoveUnchecked is the copying form of applyMoveUnchecked.
func (b *Board) appliedMoveUnchecked(m Move) *Board {
	next := b.Copy()
	next.applyMoveUnchecked(m)
	return next
}
