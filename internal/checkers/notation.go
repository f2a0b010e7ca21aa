package checkers

import (
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// NotationStyle selects how squares are written in move text.
type NotationStyle int

const (
	NumericNotation    NotationStyle = iota // 1..32 square numbers
	CoordinateNotation                      // (file,rank) pairs
)

// String returns the configuration name of the style.
func (s NotationStyle) String() string {
	if s == CoordinateNotation {
		return "coordinates"
	}
	return "numeric"
}

// ParseNotationStyle converts a configuration name to a NotationStyle.
func ParseNotationStyle(name string) (NotationStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return NumericNotation, nil
	case "coordinates", "coords":
		return CoordinateNotation, nil
	}
	return NumericNotation, errors.Wrapf(errors.ErrInvalidConfig, "notation %q", name)
}

func (s NotationStyle) square(p Position) string {
	if s == CoordinateNotation {
		return p.CoordinateString()
	}
	return p.String()
}

// Notation renders the move. Plain moves are written "from-to". Captures are
// written "fromxto" when collapsed; otherwise the captured squares are listed
// between start and end, "fromxc1xc2xto". The listed squares are those of
// the captured pieces, not the landing squares of each jump.
func (m Move) Notation(style NotationStyle, collapsed bool) string {
	from, to := style.square(m.From()), style.square(m.To())
	if !m.IsCapture() {
		return from + "-" + to
	}
	if collapsed {
		return from + "x" + to
	}

	parts := make([]string, 0, len(m.captures)+2)
	parts = append(parts, from)
	for _, pos := range m.captures {
		parts = append(parts, style.square(pos))
	}
	parts = append(parts, to)
	return strings.Join(parts, "x")
}

// FindMove returns the move in moves whose notation, in any style and either
// collapsed or expanded, matches text. Whitespace and case are ignored.
func FindMove(moves []Move, text string) (Move, error) {
	want := normalizeMoveText(text)
	if want == "" {
		return Move{}, errors.Wrap(errors.ErrIllegalMove, "empty move text")
	}

	var matches []Move
	for _, m := range moves {
		if !moveMatches(m, want) {
			continue
		}
		duplicate := false
		for _, seen := range matches {
			if seen.Equal(m) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", text)
	case 1:
		return matches[0], nil
	default:
		return Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q matches %d moves", text, len(matches))
	}
}

func moveMatches(m Move, want string) bool {
	for _, style := range []NotationStyle{NumericNotation, CoordinateNotation} {
		if m.Notation(style, true) == want || m.Notation(style, false) == want {
			return true
		}
	}
	return false
}

func normalizeMoveText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), "")
}
