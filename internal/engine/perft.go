package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  checkers.Move
	Nodes uint64
}

// PerftOptions configures ParallelPerft.
type PerftOptions struct {
	// Workers is the number of pool goroutines; < 1 means one per CPU.
	Workers int
	// Distinct enables counting of distinct leaf positions.
	Distinct bool
	// Capacity bounds the distinct-position set; 0 means unlimited.
	Capacity int
}

// PerftResult holds the outcome of ParallelPerft.
type PerftResult struct {
	Nodes    uint64
	Distinct int // distinct leaf positions; 0 unless requested
	Divide   []DivideEntry
	Elapsed  time.Duration
}

// leafFunc is called for every leaf of a counted tree.
type leafFunc func(board *checkers.Board, toMove checkers.Colour)

// Perft counts the leaf nodes of the legal-move tree depth plies deep, sides
// alternating from toMove. Depth 0 counts the root itself. A side with no
// legal move ends its branch with no leaves.
func Perft(ctx context.Context, board *checkers.Board, toMove checkers.Colour, depth int) (uint64, error) {
	return count(ctx, board, toMove, depth, nil)
}

// Divide returns the node count below each legal root move, in move order.
func Divide(ctx context.Context, board *checkers.Board, toMove checkers.Colour, depth int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := board.LegalMoves(toMove)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next, err := board.AppliedMove(m)
		if err != nil {
			return nil, err
		}
		nodes, err := count(ctx, next, toMove.Opposite(), depth-1, nil)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
	}
	return entries, nil
}

// ParallelPerft computes Divide and Perft together, distributing root moves
// over a worker pool. When opts.Distinct is set, leaf positions are also
// collected into a shared duplicate detector.
func ParallelPerft(ctx context.Context, board *checkers.Board, toMove checkers.Colour, depth int, opts PerftOptions) (PerftResult, error) {
	start := time.Now()

	var seen *hashing.ThreadSafeDuplicateDetector
	var leaf leafFunc
	if opts.Distinct {
		seen = hashing.NewThreadSafeDuplicateDetector(opts.Capacity)
		leaf = func(b *checkers.Board, c checkers.Colour) {
			seen.CheckAndAdd(b, c)
		}
	}

	result := PerftResult{}
	if depth < 1 {
		result.Nodes = 1
		if leaf != nil {
			leaf(board, toMove)
			result.Distinct = seen.UniqueCount()
		}
		result.Elapsed = time.Since(start)
		return result, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	moves := board.LegalMoves(toMove)
	pool := worker.New(func(ctx context.Context, job worker.Job) worker.Result {
		res := worker.Result{Index: job.Index, Move: job.Move}
		next, err := job.Board.AppliedMove(job.Move)
		if err != nil {
			res.Err = err
			return res
		}
		res.Nodes, res.Err = count(ctx, next, job.ToMove.Opposite(), job.Depth, leaf)
		return res
	}, worker.Workers(opts.Workers), worker.QueueSize(len(moves)))
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, m := range moves {
			job := worker.Job{Board: board, ToMove: toMove, Move: m, Depth: depth - 1, Index: i}
			if err := pool.Submit(ctx, job); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	result.Divide = make([]DivideEntry, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
				pool.Stop()
				cancel()
			}
			continue
		}
		log.Debug().Str("move", res.Move.String()).Uint64("nodes", res.Nodes).Msg("perft-root")
		result.Divide[res.Index] = DivideEntry{Move: res.Move, Nodes: res.Nodes}
		result.Nodes += res.Nodes
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return PerftResult{}, firstErr
	}

	if seen != nil {
		result.Distinct = seen.UniqueCount()
	}
	result.Elapsed = time.Since(start)
	log.Debug().Int("depth", depth).Uint64("nodes", result.Nodes).Dur("elapsed", result.Elapsed).Msg("perft")
	return result, nil
}

func count(ctx context.Context, board *checkers.Board, toMove checkers.Colour, depth int, leaf leafFunc) (uint64, error) {
	if depth <= 0 {
		if leaf != nil {
			leaf(board, toMove)
		}
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	moves := board.LegalMoves(toMove)
	if depth == 1 && leaf == nil {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		next, err := board.AppliedMove(m)
		if err != nil {
			return 0, err
		}
		n, err := count(ctx, next, toMove.Opposite(), depth-1, leaf)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}
