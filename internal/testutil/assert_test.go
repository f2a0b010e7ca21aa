package testutil

import (
	"fmt"
	"testing"

	cerrors "github.com/lgbarn/checkers-go/internal/errors"
)

// The failure paths need a fake testing.TB; recorder captures what would
// have been reported.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions_Pass(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, []int{1, 2, 3}, []int{1, 2, 3})
	AssertNoError(r, nil)
	AssertErrorIs(r, cerrors.Wrap(cerrors.ErrEmpty, "square 5"), cerrors.ErrEmpty)
	AssertContains(r, "22x15", "x")
	AssertNotContains(r, "22-18", "x")
	AssertTrue(r, true)
	AssertFalse(r, false)

	AssertEqual(t, len(r.failures), 0, "failures: %v", r.failures)
}

func TestAssertions_Fail(t *testing.T) {
	tests := []struct {
		name   string
		assert func(testing.TB)
		want   string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, 1, 2) }, "mismatch (-want +got):"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, cerrors.ErrOccupied) }, "unexpected error: square is occupied"},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, cerrors.ErrOccupied, cerrors.ErrEmpty) }, "error = square is occupied, want square is empty"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "22-18", "x") }, `"22-18" does not contain "x"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "22x15", "x") }, `"22x15" should not contain "x"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, false, "square %d", 9) }, "square 9: expected true but got false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true) }, "expected false but got true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("got %d failures, want 1", len(r.failures))
			}
			AssertContains(t, r.failures[0], tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %d", 18}, "square 18"},
		{"non-string format", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
