// Package engine provides whole-tree operations built on the checkers rules:
// parallel move generation and perft node counting.
package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// LegalMoves returns the same moves as board.LegalMoves(colour), searching
// each piece in its own goroutine. At most workers searches run at once;
// workers < 1 means one per CPU. The board is only read.
func LegalMoves(ctx context.Context, board *checkers.Board, colour checkers.Colour, workers int) ([]checkers.Move, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	pieces := board.Pieces(colour)
	perPiece := make([][]checkers.Move, len(pieces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, piece := range pieces {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perPiece[i] = piece.PossibleMoves(board)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var moves []checkers.Move
	for _, m := range perPiece {
		moves = append(moves, m...)
	}
	return checkers.FilterForced(moves), nil
}
