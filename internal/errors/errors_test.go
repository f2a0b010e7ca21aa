package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrWhiteSquare", ErrWhiteSquare, ErrWhiteSquare},
		{"ErrEmpty", ErrEmpty, ErrEmpty},
		{"ErrOccupied", ErrOccupied, ErrOccupied},
		{"ErrColorLimit", ErrColorLimit, ErrColorLimit},
		{"ErrSameColorCapture", ErrSameColorCapture, ErrSameColorCapture},
		{"ErrNotKing", ErrNotKing, ErrNotKing},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrAmbiguousMove", ErrAmbiguousMove, ErrAmbiguousMove},
		{"ErrInvalidTemplate", ErrInvalidTemplate, ErrInvalidTemplate},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies the two error families never alias.
func TestSentinelErrors_Distinct(t *testing.T) {
	encoding := []error{ErrOutOfBounds, ErrWhiteSquare}
	rules := []error{ErrEmpty, ErrOccupied, ErrColorLimit, ErrSameColorCapture, ErrNotKing}

	for _, e := range encoding {
		for _, r := range rules {
			if errors.Is(e, r) || errors.Is(r, e) {
				t.Errorf("%v and %v should be distinct", e, r)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("stepping from square 4: %w", ErrOutOfBounds)

	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Errorf("errors.Is(wrapped, ErrOutOfBounds) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrOccupied, "inserting piece")

	if !errors.Is(wrapped, ErrOccupied) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "inserting piece") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

func TestWrap_Nil(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
	if got := Wrapf(nil, "context %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %q on ply %d", "9x18", 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "ply 3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
