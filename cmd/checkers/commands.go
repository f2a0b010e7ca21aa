package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/output"
)

// app holds the position the commands operate on.
type app struct {
	cfg   *config.Config
	w     io.Writer
	out   output.Writer
	board *checkers.Board
	side  checkers.Colour
}

func newApp(cfg *config.Config, w io.Writer) (*app, error) {
	a := &app{cfg: cfg}
	a.setOutput(w)
	if err := a.reset(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) setOutput(w io.Writer) {
	a.w = w
	a.out = output.NewWriter(w, a.cfg.Output)
}

// reset restores the configured start position.
func (a *app) reset() error {
	board, err := a.cfg.StartBoard()
	if err != nil {
		return err
	}
	a.board = board
	a.side = a.cfg.Side
	return nil
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "show":
		return a.show()
	case "moves":
		return a.moves(ctx)
	case "apply":
		if len(args) == 0 {
			return fmt.Errorf("apply: no moves given")
		}
		if err := a.play(args); err != nil {
			return err
		}
		return a.show()
	case "perft":
		return a.perft(ctx, args)
	case "shell":
		return a.shell(ctx)
	}
	return fmt.Errorf("unknown command %q", name)
}

func (a *app) show() error {
	return a.out.WriteBoard(a.board, a.side)
}

func (a *app) moves(ctx context.Context) error {
	moves, err := engine.LegalMoves(ctx, a.board, a.side, a.cfg.Perft.Workers)
	if err != nil {
		return err
	}
	return a.out.WriteMoves(a.side, moves)
}

// play applies each move text in turn, alternating sides. Moves before a
// rejected one stay played.
func (a *app) play(texts []string) error {
	for _, text := range texts {
		m, err := checkers.FindMove(a.board.LegalMoves(a.side), text)
		if err != nil {
			return fmt.Errorf("%s to move: %w", a.side, err)
		}
		if err := a.board.ApplyMove(m); err != nil {
			return err
		}
		log.Debug().Str("side", a.side.String()).Str("move", m.String()).Msg("played")
		a.side = a.side.Opposite()
	}
	return nil
}

func (a *app) perft(ctx context.Context, args []string) error {
	depth := a.cfg.Perft.Depth
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 || d > config.MaxPerftDepth {
			return fmt.Errorf("perft: depth %q must be 0..%d", args[0], config.MaxPerftDepth)
		}
		depth = d
	}

	res, err := engine.ParallelPerft(ctx, a.board, a.side, depth, engine.PerftOptions{
		Workers:  a.cfg.Perft.Workers,
		Distinct: a.cfg.Duplicate.CountDistinct,
		Capacity: a.cfg.Duplicate.Capacity,
	})
	if err != nil {
		return err
	}
	return a.out.WritePerft(a.side, depth, res)
}
