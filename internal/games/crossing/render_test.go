package crossing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/assets"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestRenderer(t *testing.T) (*ScreenRenderer, *core.Screen, *Session) {
	t.Helper()

	catalog := assets.NewCatalog()
	if err := catalog.LoadDefault(); err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	cfg := config.DefaultCrossingConfig()
	screen := core.NewScreen(80, 24)
	session := NewSessionFromConfig(cfg, catalog, 1)
	r := NewScreenRenderer(screen, catalog, session.Board(), cfg.Display)
	return r, screen, session
}

func TestScreenRendererBoardRect(t *testing.T) {
	r, _, _ := newTestRenderer(t)

	area := r.BoardRect()
	expected := core.NewRect(15, 2, 50, 18)
	if area != expected {
		t.Errorf("BoardRect() = %+v, expected %+v", area, expected)
	}
}

func TestScreenRendererDrawBoard(t *testing.T) {
	r, screen, session := newTestRenderer(t)
	r.DrawBoard(session.Board().Layout(), session.Snapshot())

	// Goal row is water.
	if c := screen.GetCell(15, 2); c.Rune != '~' || c.BG != core.ColorBlue {
		t.Errorf("water cell = %+v, expected '~' on blue", c)
	}
	// Bottom rows are grass.
	if c := screen.GetCell(15, 19); c.Rune != '"' || c.BG != core.ColorGreen {
		t.Errorf("grass cell = %+v, expected '\"' on green", c)
	}
	// Nothing drawn outside the board below the HUD.
	if c := screen.GetCell(14, 10); c.Rune != ' ' {
		t.Errorf("cell left of the board = %q, expected blank", c.Rune)
	}

	// Player at (2, 5): column 15 + 20 + 3, middle line of row 5.
	if row := screen.Row(18); !strings.Contains(row, `\o/`) {
		t.Errorf("player row = %q, expected the player glyph", row)
	}
	if c := screen.GetCell(38, 18); c.Rune != '\\' || c.FG != core.ColorBrightYellow || c.BG != core.ColorGreen {
		t.Errorf("player cell = %+v, expected yellow glyph on grass", c)
	}

	if hud := screen.Row(0); !strings.Contains(hud, "Lives ♥♥♥") {
		t.Errorf("HUD = %q, expected three lives", hud)
	}

	// Hint is centered on the line below the board.
	hint := "Press Enter to start"
	below := screen.Row(r.BoardRect().Bottom())
	if x := strings.Index(below, hint); x != (80-len(hint))/2 {
		t.Errorf("hint at column %d in %q, expected it centered", x, below)
	}
}

func TestScreenRendererClipsEnemies(t *testing.T) {
	r, screen, session := newTestRenderer(t)
	snap := session.Snapshot()
	snap.Enemies = []Enemy{{X: 480, Row: 2}}

	r.DrawBoard(session.Board().Layout(), snap)

	y := 2 + 2*3 + 1
	if c := screen.GetCell(64, y); c.Rune != '<' {
		t.Errorf("last board column = %q, expected the enemy's first rune", c.Rune)
	}
	if c := screen.GetCell(65, y); c.Rune != ' ' {
		t.Errorf("cell right of the board = %q, expected the enemy to be clipped", c.Rune)
	}
}

func TestScreenRendererLivesDecrease(t *testing.T) {
	r, screen, session := newTestRenderer(t)
	snap := session.Snapshot()
	snap.Lives = 1

	r.DrawBoard(session.Board().Layout(), snap)

	if hud := screen.Row(0); !strings.Contains(hud, "Lives ♥··") {
		t.Errorf("HUD = %q, expected one life left", hud)
	}
}

func TestScreenRendererDrawStatus(t *testing.T) {
	r, screen, session := newTestRenderer(t)
	r.DrawBoard(session.Board().Layout(), session.Snapshot())
	r.DrawStatus(WinMessage, core.ColorGreen, core.ColorBrightWhite)

	cx, cy := r.BoardRect().Center()
	row := screen.Row(cy)
	if !strings.Contains(row, WinMessage) {
		t.Fatalf("center row = %q, expected %q", row, WinMessage)
	}

	// Banner is the message padded by three cells on each side.
	x := cx - (len(WinMessage)+6)/2 + 3
	if c := screen.GetCell(x, cy); c.Rune != 'Y' {
		t.Errorf("banner text starts with %q, expected 'Y'", c.Rune)
	}
	c := screen.GetCell(x-1, cy)
	if c.BG != core.ColorGreen || c.FG != core.ColorBrightWhite {
		t.Errorf("banner cell = %+v, expected white on green", c)
	}
}

func TestPhaseHint(t *testing.T) {
	tests := []struct {
		snap     Snapshot
		expected string
	}{
		{Snapshot{Phase: PhaseIdle}, "Press Enter to start"},
		{Snapshot{Phase: PhaseRunning}, "Reach the water!"},
		{Snapshot{Phase: PhaseEnded, Outcome: OutcomeWon}, "Won - R to play again"},
		{Snapshot{Phase: PhaseEnded, Outcome: OutcomeLost}, "Lost - R to try again"},
	}

	for _, tc := range tests {
		if got := phaseHint(tc.snap); got != tc.expected {
			t.Errorf("phaseHint(%v) = %q, expected %q", tc.snap.Phase, got, tc.expected)
		}
	}
}
