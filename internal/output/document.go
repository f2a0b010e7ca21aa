// Package output writes boards, move lists and perft results as text, JSON
// or YAML.
package output

import (
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// MoveDoc is one move in a structured document.
type MoveDoc struct {
	Notation string   `json:"notation" yaml:"notation"`
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Captures []string `json:"captures,omitempty" yaml:"captures,omitempty"`
	Promotes bool     `json:"promotes,omitempty" yaml:"promotes,omitempty"`
}

// MoveListDoc is the legal moves of one side.
type MoveListDoc struct {
	Side  string    `json:"side" yaml:"side"`
	Count int       `json:"count" yaml:"count"`
	Moves []MoveDoc `json:"moves" yaml:"moves"`
}

// BoardDoc is a board with its piece counts.
type BoardDoc struct {
	ToMove   string  `json:"toMove" yaml:"toMove"`
	White    int     `json:"white" yaml:"white"`
	Black    int     `json:"black" yaml:"black"`
	Template [][]int `json:"template" yaml:"template"`
}

// DivideDoc is the node count below one root move.
type DivideDoc struct {
	Move  string `json:"move" yaml:"move"`
	Nodes uint64 `json:"nodes" yaml:"nodes"`
}

// PerftDoc is a perft result.
type PerftDoc struct {
	Side      string      `json:"side" yaml:"side"`
	Depth     int         `json:"depth" yaml:"depth"`
	Nodes     uint64      `json:"nodes" yaml:"nodes"`
	Distinct  int         `json:"distinct,omitempty" yaml:"distinct,omitempty"`
	ElapsedMS int64       `json:"elapsedMs" yaml:"elapsedMs"`
	Divide    []DivideDoc `json:"divide,omitempty" yaml:"divide,omitempty"`
}

// MoveToDoc converts a move using the configured notation.
func MoveToDoc(m checkers.Move, out *config.OutputConfig) MoveDoc {
	doc := MoveDoc{
		Notation: m.Notation(out.Notation, out.Collapsed),
		From:     squareText(m.From(), out.Notation),
		To:       squareText(m.To(), out.Notation),
		Promotes: m.Promotes(),
	}
	for _, pos := range m.Captures() {
		doc.Captures = append(doc.Captures, squareText(pos, out.Notation))
	}
	return doc
}

// MovesToDoc converts the moves of side.
func MovesToDoc(side checkers.Colour, moves []checkers.Move, out *config.OutputConfig) *MoveListDoc {
	doc := &MoveListDoc{
		Side:  sideName(side),
		Count: len(moves),
		Moves: make([]MoveDoc, 0, len(moves)),
	}
	for _, m := range moves {
		doc.Moves = append(doc.Moves, MoveToDoc(m, out))
	}
	return doc
}

// BoardToDoc converts a board.
func BoardToDoc(b *checkers.Board, toMove checkers.Colour) *BoardDoc {
	t := b.Template()
	rows := make([][]int, len(t))
	for y := range t {
		rows[y] = append([]int(nil), t[y][:]...)
	}
	return &BoardDoc{
		ToMove:   sideName(toMove),
		White:    b.Count(checkers.White),
		Black:    b.Count(checkers.Black),
		Template: rows,
	}
}

// PerftToDoc converts a perft result.
func PerftToDoc(side checkers.Colour, depth int, res engine.PerftResult, out *config.OutputConfig) *PerftDoc {
	doc := &PerftDoc{
		Side:      sideName(side),
		Depth:     depth,
		Nodes:     res.Nodes,
		Distinct:  res.Distinct,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	for _, e := range res.Divide {
		doc.Divide = append(doc.Divide, DivideDoc{
			Move:  e.Move.Notation(out.Notation, out.Collapsed),
			Nodes: e.Nodes,
		})
	}
	return doc
}

func squareText(p checkers.Position, style checkers.NotationStyle) string {
	if style == checkers.CoordinateNotation {
		return p.CoordinateString()
	}
	return p.String()
}

func sideName(c checkers.Colour) string {
	return strings.ToLower(c.String())
}
