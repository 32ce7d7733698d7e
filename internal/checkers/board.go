package checkers

import (
	"fmt"
	"iter"
	"strings"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Men move toward the opponent: red up (-1), black down (+1).
func forward(c Color) int {
	if c == Red {
		return -1
	}
	if c == Black {
		return +1
	}
	return 0
}

// promotionRow is the far row where a man of color c is crowned.
func promotionRow(c Color) int {
	if c == Red {
		return 0
	}
	return Rows - 1
}

// Board is a fixed 8x8 grid; copying the value copies every piece.
type Board struct {
	Squares [NumSquares]Piece
}

const standardLayout = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
r.r.r.r.
.r.r.r.r
r.r.r.r.`

func NewEmptyBoard() *Board {
	return &Board{}
}

// NewStandardBoard sets up 12 black men on rows 0-2 and 12 red men on rows 5-7.
func NewStandardBoard() *Board {
	b, err := DecodeBoard(strings.ReplaceAll(standardLayout, "\n", "/"))
	if err != nil {
		panic("standard layout: " + err.Error())
	}
	return b
}

// Piece returns NoPiece for empty squares and for positions off the board.
func (b *Board) Piece(pos Position) Piece {
	if !pos.IsValid() {
		return NoPiece
	}
	return b.Squares[pos.index()]
}

// SetPiece places pc at pos; NoPiece clears the square.
func (b *Board) SetPiece(pos Position, pc Piece) error {
	if !pos.IsValid() {
		return fmt.Errorf("set %d,%d: %w", pos.Row, pos.Col, ErrOutOfRange)
	}
	if pc != NoPiece && !pos.IsDark() {
		return fmt.Errorf("set %s: %w", pos, ErrLightSquare)
	}
	b.Squares[pos.index()] = pc
	return nil
}

// Pieces yields every piece of color c in row-major order. The sequence reads the
// board lazily and can be ranged over any number of times.
func (b *Board) Pieces(c Color) iter.Seq2[Position, Piece] {
	return func(yield func(Position, Piece) bool) {
		for sq := 0; sq < NumSquares; sq++ {
			pc := b.Squares[sq]
			if pc == NoPiece || pc.Color() != c {
				continue
			}
			if !yield(Position{Row: rowOf(sq), Col: colOf(sq)}, pc) {
				return
			}
		}
	}
}

func (b *Board) CountPieces(c Color) int {
	n := 0
	for range b.Pieces(c) {
		n++
	}
	return n
}

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}
