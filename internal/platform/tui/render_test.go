package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(3, 0, '●', core.ColorBrightWhite)
	s.DrawRect(core.NewRect(0, 1, 6, 1), '█', core.ColorBrightCyan)

	out := ansi.Strip(NewPalette(nil).Render(s))
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("Render() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "ab ●  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "ab ●  ")
	}
	if lines[1] != "██████" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "██████")
	}
}

func TestPaletteCoversColors(t *testing.T) {
	p := NewPalette(nil)
	for c := core.ColorRed; c <= core.ColorBrightWhite; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	if _, ok := p.styles[core.ColorDefault]; ok {
		t.Error("the default color should render unstyled")
	}
}
