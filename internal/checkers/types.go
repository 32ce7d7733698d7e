package checkers

import (
	"fmt"
	"strings"
)

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	}
	return "None"
}

// ParseColor accepts "red"/"r" and "black"/"b" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "black", "b":
		return Black, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// Piece 0 = empty; >0 red, <0 black; abs 1 = man, 2 = king.
type Piece int8

const (
	NoPiece   Piece = 0
	RedMan    Piece = 1
	RedKing   Piece = 2
	BlackMan  Piece = -1
	BlackKing Piece = -2
)

func NewPiece(c Color, king bool) Piece {
	var p Piece
	switch c {
	case Red:
		p = RedMan
	case Black:
		p = BlackMan
	default:
		return NoPiece
	}
	if king {
		return p.Promote()
	}
	return p
}

func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsKing() bool {
	return p == RedKing || p == BlackKing
}

// Promote returns the king of the same color. Kings and empty cells are returned unchanged.
func (p Piece) Promote() Piece {
	switch p {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return p
}

func (p Piece) String() string {
	return string(pieceToChar(p))
}

type Status int8

const (
	InProgress Status = iota
	RedWins
	BlackWins
	// Draw is a valid terminal status, but no rule currently produces it.
	Draw
)

func (s Status) IsOver() bool {
	return s != InProgress
}

// Winner returns NoColor while the game is running or drawn.
func (s Status) Winner() Color {
	switch s {
	case RedWins:
		return Red
	case BlackWins:
		return Black
	}
	return NoColor
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case RedWins:
		return "RedWins"
	case BlackWins:
		return "BlackWins"
	case Draw:
		return "Draw"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

func winFor(c Color) Status {
	if c == Red {
		return RedWins
	}
	return BlackWins
}
