package checkers

import (
	"errors"
	"testing"
)

func TestNotation(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{NewPosition(7, 0), "a1"},
		{NewPosition(0, 7), "h8"},
		{NewPosition(5, 2), "c3"},
		{NewPosition(3, 4), "e5"},
		{NewPosition(8, 0), "?"},
		{NewPosition(0, -1), "?"},
	}
	for _, tt := range tests {
		if got := tt.pos.Notation(); got != tt.want {
			t.Errorf("Notation(%d,%d) = %q, want %q", tt.pos.Row, tt.pos.Col, got, tt.want)
		}
	}
}

func TestParsePositionRoundTrip(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			p := NewPosition(row, col)
			got, err := ParsePosition(p.Notation())
			if err != nil {
				t.Fatalf("parse %q: %v", p.Notation(), err)
			}
			if got != p {
				t.Fatalf("round trip %q: got %+v want %+v", p.Notation(), got, p)
			}
		}
	}
}

func TestParsePositionAcceptsUpperCaseFile(t *testing.T) {
	got, err := ParsePosition("C3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != NewPosition(5, 2) {
		t.Fatalf("got %+v", got)
	}
}

func TestParsePositionRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "a", "i3", "a0", "a9", "a10", "3c", "zz", "c-"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParsePosition(text)
			if !errors.Is(err, ErrInvalidNotation) {
				t.Fatalf("ParsePosition(%q) err = %v, want ErrInvalidNotation", text, err)
			}
		})
	}
}

func TestIsDark(t *testing.T) {
	if NewPosition(0, 0).IsDark() {
		t.Error("a8 should be light")
	}
	if !NewPosition(0, 1).IsDark() {
		t.Error("b8 should be dark")
	}
	if !NewPosition(7, 0).IsDark() {
		t.Error("a1 should be dark")
	}
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath("a3xc5xE7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Position{NewPosition(5, 0), NewPosition(3, 2), NewPosition(1, 4)}
	if len(path) != len(want) {
		t.Fatalf("len = %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}

	if _, err := ParsePath("c3"); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("single square: err = %v", err)
	}
	if _, err := ParsePath("c3-k4"); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("bad square: err = %v", err)
	}
}
