package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Writer is the interface for writing results to output.
// Different implementations handle different output formats.
type Writer interface {
	// WriteBoard writes a board and the side to move.
	WriteBoard(b *checkers.Board, toMove checkers.Colour) error

	// WriteMoves writes the moves available to side.
	WriteMoves(side checkers.Colour, moves []checkers.Move) error

	// WritePerft writes a perft result.
	WritePerft(side checkers.Colour, depth int, res engine.PerftResult) error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, out *config.OutputConfig) Writer {
	switch out.Format {
	case config.JSONFormat:
		return NewJSONWriter(w, out)
	case config.YAMLFormat:
		return NewYAMLWriter(w, out)
	default:
		return NewTextWriter(w, out)
	}
}

// TextWriter writes human-readable text.
type TextWriter struct {
	w   io.Writer
	out *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, out *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, out: out}
}

// WriteBoard draws the board followed by the side to move.
func (tw *TextWriter) WriteBoard(b *checkers.Board, toMove checkers.Colour) error {
	_, err := fmt.Fprintf(tw.w, "%s%s to move\n", b, toMove)
	return err
}

// WriteMoves writes one move per line, with its capture count.
func (tw *TextWriter) WriteMoves(side checkers.Colour, moves []checkers.Move) error {
	if len(moves) == 0 {
		_, err := fmt.Fprintf(tw.w, "%s has no legal moves\n", side)
		return err
	}
	for _, m := range moves {
		line := m.Notation(tw.out.Notation, tw.out.Collapsed)
		if n := len(m.Captures()); n > 0 {
			line += fmt.Sprintf(" (%d %s)", n, plural(n, "capture", "captures"))
		}
		if m.Promotes() {
			line += " crowns"
		}
		if _, err := fmt.Fprintln(tw.w, line); err != nil {
			return err
		}
	}
	return nil
}

// WritePerft writes the divide table and the totals.
func (tw *TextWriter) WritePerft(side checkers.Colour, depth int, res engine.PerftResult) error {
	var sb strings.Builder
	for _, e := range res.Divide {
		fmt.Fprintf(&sb, "%-12s %d\n", e.Move.Notation(tw.out.Notation, tw.out.Collapsed), e.Nodes)
	}
	fmt.Fprintf(&sb, "perft(%d) %s: %d nodes", depth, strings.ToLower(side.String()), res.Nodes)
	if res.Distinct > 0 {
		fmt.Fprintf(&sb, ", %d distinct", res.Distinct)
	}
	fmt.Fprintf(&sb, " in %s\n", res.Elapsed.Round(time.Millisecond))
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// JSONWriter writes indented JSON documents, one per call.
type JSONWriter struct {
	w   io.Writer
	out *config.OutputConfig
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, out *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, out: out}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteBoard writes a BoardDoc.
func (jw *JSONWriter) WriteBoard(b *checkers.Board, toMove checkers.Colour) error {
	return jw.encode(BoardToDoc(b, toMove))
}

// WriteMoves writes a MoveListDoc.
func (jw *JSONWriter) WriteMoves(side checkers.Colour, moves []checkers.Move) error {
	return jw.encode(MovesToDoc(side, moves, jw.out))
}

// WritePerft writes a PerftDoc.
func (jw *JSONWriter) WritePerft(side checkers.Colour, depth int, res engine.PerftResult) error {
	return jw.encode(PerftToDoc(side, depth, res, jw.out))
}

// YAMLWriter writes YAML documents, one per call.
type YAMLWriter struct {
	w   io.Writer
	out *config.OutputConfig
}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter(w io.Writer, out *config.OutputConfig) *YAMLWriter {
	return &YAMLWriter{w: w, out: out}
}

func (yw *YAMLWriter) encode(v interface{}) error {
	enc := yaml.NewEncoder(yw.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBoard writes a BoardDoc.
func (yw *YAMLWriter) WriteBoard(b *checkers.Board, toMove checkers.Colour) error {
	return yw.encode(BoardToDoc(b, toMove))
}

// WriteMoves writes a MoveListDoc.
func (yw *YAMLWriter) WriteMoves(side checkers.Colour, moves []checkers.Move) error {
	return yw.encode(MovesToDoc(side, moves, yw.out))
}

// WritePerft writes a PerftDoc.
func (yw *YAMLWriter) WritePerft(side checkers.Colour, depth int, res engine.PerftResult) error {
	return yw.encode(PerftToDoc(side, depth, res, yw.out))
}
