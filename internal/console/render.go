package console

import (
	"fmt"
	"io"
	"strings"

	"checkers/internal/checkers"
)

const fileLabels = "    a b c d e f g h"

// RenderBoard draws b with rank 8 at the top. Light squares show as '=',
// empty dark squares as '.'.
func RenderBoard(w io.Writer, b *checkers.Board) {
	var sb strings.Builder
	sb.WriteString(fileLabels + "\n")
	sb.WriteString("  +-----------------+\n")
	for row := 0; row < checkers.Rows; row++ {
		rank := checkers.Rows - row
		fmt.Fprintf(&sb, "%d | ", rank)
		for col := 0; col < checkers.Cols; col++ {
			pos := checkers.NewPosition(row, col)
			sb.WriteByte(squareChar(pos, b.Piece(pos)))
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "| %d\n", rank)
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString(fileLabels + "\n")
	fmt.Fprint(w, sb.String())
}

func squareChar(pos checkers.Position, pc checkers.Piece) byte {
	switch {
	case !pos.IsDark():
		return '='
	case pc == checkers.NoPiece:
		return '.'
	}
	return pc.String()[0]
}
