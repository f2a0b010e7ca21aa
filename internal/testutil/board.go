// Package testutil provides shared test utilities for the checkers-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// EmptyTemplate is a template with no pieces.
var EmptyTemplate checkers.Template

// MustBoard builds a board from a template.
// It calls t.Fatal if the template is rejected.
func MustBoard(t testing.TB, tmpl checkers.Template) *checkers.Board {
	t.Helper()
	b, err := checkers.BuilderFromTemplate(tmpl)
	if err != nil {
		t.Fatalf("BuilderFromTemplate() error: %v", err)
	}
	return b.Build()
}

// BoardOf builds a board from square numbers mapped to template codes.
// It calls t.Fatal if any placement is rejected.
func BoardOf(t testing.TB, codes map[int]int) *checkers.Board {
	t.Helper()
	var tmpl checkers.Template
	for n, code := range codes {
		x, y := Sq(t, n).Coordinates()
		tmpl[y][x] = code
	}
	return MustBoard(t, tmpl)
}

// Sq returns the square with notation index n.
// It calls t.Fatal if n is not a playable square.
func Sq(t testing.TB, n int) checkers.Position {
	t.Helper()
	pos, err := checkers.FromNotation(n)
	if err != nil {
		t.Fatalf("FromNotation(%d) error: %v", n, err)
	}
	return pos
}

// At returns the square at file x, rank y.
// It calls t.Fatal if the coordinates are not a playable square.
func At(t testing.TB, x, y int) checkers.Position {
	t.Helper()
	pos, err := checkers.FromCoordinates(x, y)
	if err != nil {
		t.Fatalf("FromCoordinates(%d, %d) error: %v", x, y, err)
	}
	return pos
}

// AssertTemplate compares a board against the template it should match.
func AssertTemplate(t testing.TB, got *checkers.Board, want checkers.Template, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, got.Template(), want, msgAndArgs...)
}

// Notations renders each move in collapsed numeric notation.
func Notations(moves []checkers.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// AssertMoves compares the collapsed numeric notation of got against want,
// ignoring order.
func AssertMoves(t testing.TB, got []checkers.Move, want ...string) {
	t.Helper()
	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, Notations(got), sorted, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}
