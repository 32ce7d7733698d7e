package console

import (
	"bytes"
	"strings"
	"testing"

	"checkers/internal/checkers"
)

func TestRenderStandardBoard(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, checkers.NewStandardBoard())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 12 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	want := map[int]string{
		0:  "    a b c d e f g h",
		2:  "8 | = b = b = b = b | 8",
		5:  "5 | . = . = . = . = | 5",
		9:  "1 | r = r = r = r = | 1",
		11: "    a b c d e f g h",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRenderKings(t *testing.T) {
	b := checkers.NewEmptyBoard()
	if err := b.SetPiece(checkers.NewPosition(0, 1), checkers.RedKing); err != nil {
		t.Fatal(err)
	}
	if err := b.SetPiece(checkers.NewPosition(7, 6), checkers.BlackKing); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	RenderBoard(&buf, b)
	out := buf.String()
	if !strings.Contains(out, "8 | = R = . = . = . | 8") || !strings.Contains(out, "1 | . = . = . = B = | 1") {
		t.Fatalf("unexpected board:\n%s", out)
	}
}
