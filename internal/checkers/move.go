package checkers

import (
	"fmt"
	"slices"
	"strings"
)

// Move is one complete turn: a single step, or a capture chain that jumps
// once per captured piece. Path starts at From and ends at To.
type Move struct {
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Path     []Position `json:"path"`
	Captured []Position `json:"captured,omitempty"`
}

// newMove copies path and captured so the move owns its slices.
func newMove(path, captured []Position) Move {
	return Move{
		From:     path[0],
		To:       path[len(path)-1],
		Path:     slices.Clone(path),
		Captured: slices.Clone(captured),
	}
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

// MatchesPath reports whether path visits exactly the squares of m, in order.
func (m Move) MatchesPath(path []Position) bool {
	return slices.Equal(m.Path, path)
}

// String renders the path as "c3-d4" for a step or "c3xe5xc7" for captures.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return formatPath(m.Path, sep)
}

func formatPath(path []Position, sep string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.Notation()
	}
	return strings.Join(parts, sep)
}

// ParsePath reads squares separated by '-' or 'x', e.g. "c3-d4" or "a3xc5xe7".
func ParsePath(text string) ([]Position, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == 'x' || r == 'X' || r == ' '
	})
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: path %q needs at least two squares", ErrInvalidNotation, text)
	}
	path := make([]Position, 0, len(fields))
	for _, f := range fields {
		pos, err := ParsePosition(f)
		if err != nil {
			return nil, err
		}
		path = append(path, pos)
	}
	return path, nil
}
