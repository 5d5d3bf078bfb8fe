package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/console-shooter/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawHLine(0, 0, 6, '-')
	s.Set(2, 0, 'A')
	s.DrawText(0, 1, "V| ok")

	got := ansi.Strip(RenderScreen(s))

	want := "--A---\nV| ok "
	if got != want {
		t.Errorf("RenderScreen() stripped = %q, expected %q", got, want)
	}
}

func TestRenderScreenRowCount(t *testing.T) {
	s := core.NewScreen(40, 20)
	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 19 {
		t.Errorf("got %d newlines, expected 19", n)
	}
}

func TestStyleClass(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'A', 'A'},
		{'V', 'V'},
		{'|', '|'},
		{'-', '-'},
		{'S', 0},
		{' ', 0},
	}
	for _, tt := range tests {
		if got := styleClass(tt.r); got != tt.want {
			t.Errorf("styleClass(%q) = %q, expected %q", tt.r, got, tt.want)
		}
	}
}
