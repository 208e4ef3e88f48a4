package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blockblast/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "gold", core.ColorGold)
	s.DrawTextColored(5, 0, "pink", core.ColorPink)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	for _, want := range []string{"gold", "pink", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() output missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range core.Colors() {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("styleFor(unknown).Render() = %q, want plain text", got)
	}
}
