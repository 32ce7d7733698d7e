package checkers

import (
	"fmt"
	"strconv"
)

// Position is a square on the 8x8 board. Row 0 is rank 8 (Black's home side),
// column 0 is file a.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) IsValid() bool {
	return onBoard(p.Row, p.Col)
}

// IsDark reports whether the square is playable.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 != 0
}

// Notation returns the algebraic name of the square, e.g. row 7 / col 0 is "a1".
// Invalid positions render as "?".
func (p Position) Notation() string {
	if !p.IsValid() {
		return "?"
	}
	return string(rune('a'+p.Col)) + strconv.Itoa(Rows-p.Row)
}

func (p Position) String() string {
	return p.Notation()
}

func (p Position) offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) index() int {
	return indexOf(p.Row, p.Col)
}

// ParsePosition is the inverse of Notation. The file letter is case-insensitive.
func ParsePosition(text string) (Position, error) {
	if len(text) < 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	file := text[0] | 0x20 // ASCII lower-case
	if file < 'a' || file > 'h' {
		return Position{}, fmt.Errorf("%w: file in %q", ErrInvalidNotation, text)
	}
	rank, err := strconv.Atoi(text[1:])
	if err != nil || rank < 1 || rank > Rows {
		return Position{}, fmt.Errorf("%w: rank in %q", ErrInvalidNotation, text)
	}
	pos := Position{Row: Rows - rank, Col: int(file - 'a')}
	if !pos.IsValid() {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	return pos, nil
}
