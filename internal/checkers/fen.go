package checkers

import (
	"fmt"
	"strings"
)

// Board diagrams are FEN-like: 8 ranks separated by "/", rank 8 (row 0) first.
// Empty squares are compressed into digits ('.' is accepted as a single empty
// square when decoding). r/b are men, R/B kings. A game state appends " r" or " b"
// for the side to move.

func pieceToChar(p Piece) rune {
	switch p {
	case RedMan:
		return 'r'
	case RedKing:
		return 'R'
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	}
	return '.'
}

var charToPiece = map[rune]Piece{
	'r': RedMan,
	'R': RedKing,
	'b': BlackMan,
	'B': BlackKing,
}

func EncodeBoard(b *Board) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

func DecodeBoard(diagram string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(diagram), "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidDiagram, Rows, len(rows))
	}
	b := NewEmptyBoard()
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d is too long", ErrInvalidDiagram, Rows-r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidDiagram, ch)
			}
			if err := b.SetPiece(NewPosition(r, c), pc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDiagram, err)
			}
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidDiagram, Rows-r, c)
		}
	}
	return b, nil
}

func (g *GameState) Encode() string {
	side := "r"
	if g.current == Black {
		side = "b"
	}
	return EncodeBoard(g.board) + " " + side
}

// DecodeGameState restores a board and side to move, then recomputes the status,
// so a diagram of a finished game decodes as finished.
func DecodeGameState(text string) (*GameState, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"<ranks> <side>\"", ErrInvalidDiagram)
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return nil, err
	}
	var side Color
	switch parts[1] {
	case "r":
		side = Red
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidDiagram, parts[1])
	}
	g := NewGameState(b, side)
	g.UpdateStatus()
	return g, nil
}
