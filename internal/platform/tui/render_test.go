package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 1, "World")

	if got := RenderScreen(s); got != "Hello\nWorld" {
		t.Errorf("RenderScreen() = %q, expected plain text", got)
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "ab", core.ColorRed, core.ColorBlue)
	s.DrawText(2, 0, "cd")

	got := RenderScreen(s)
	if !strings.Contains(got, "ab") || !strings.Contains(got, "cd") {
		t.Errorf("RenderScreen() = %q, expected all text", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("RenderScreen() = %q, expected one line", got)
	}
}

func TestCellStyleDefaults(t *testing.T) {
	if got := cellStyle(core.ColorDefault, core.ColorDefault).Render("x"); got != "x" {
		t.Errorf("default style rendered %q, expected plain text", got)
	}
}
