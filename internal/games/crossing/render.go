package crossing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-crossing/internal/assets"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Status banners shown when a game ends.
const (
	WinMessage  = "YOU WIN!"
	LoseMessage = "GAME OVER"
)

// BoardLayout is the static part of the scene.
type BoardLayout struct {
	Rows      int
	Columns   int
	RowImages []string // Background image id per row, top to bottom
}

// Renderer draws the scene. It is a pure presentation sink: the loop calls
// DrawBoard every frame and DrawStatus on top of it once a game has ended.
type Renderer interface {
	DrawBoard(layout BoardLayout, snap Snapshot)
	DrawStatus(message string, bg, fg core.Color)
}

// SpriteSource looks up sprite glyphs and colors.
type SpriteSource interface {
	Sprite(id string) (assets.Sprite, bool)
}

// hudLines is the number of screen lines above the board.
const hudLines = 2

// ScreenRenderer draws into a core.Screen. Every board cell becomes
// cellChars x cellLines terminal cells; pixel positions are scaled to match.
type ScreenRenderer struct {
	screen    *core.Screen
	sprites   SpriteSource
	board     Board
	cellChars int
	cellLines int
}

// NewScreenRenderer creates a renderer for the given board.
func NewScreenRenderer(screen *core.Screen, sprites SpriteSource, board Board, display config.DisplayConfig) *ScreenRenderer {
	return &ScreenRenderer{
		screen:    screen,
		sprites:   sprites,
		board:     board,
		cellChars: core.Max(display.CellChars, 1),
		cellLines: core.Max(display.CellLines, 1),
	}
}

// BoardRect returns the screen area covered by the board.
func (r *ScreenRenderer) BoardRect() core.Rect {
	w := r.board.Columns * r.cellChars
	h := r.board.Rows * r.cellLines
	x := core.Max((r.screen.Width()-w)/2, 0)
	return core.NewRect(x, hudLines, w, h)
}

// DrawBoard clears the screen and draws rows, enemies, the player and the HUD.
func (r *ScreenRenderer) DrawBoard(layout BoardLayout, snap Snapshot) {
	r.screen.Clear()
	area := r.BoardRect()

	for row := 0; row < layout.Rows; row++ {
		r.drawRow(area, layout, row)
	}

	for _, e := range snap.Enemies {
		r.drawSprite(area, r.board.EnemySprite, e.X, e.Row, '>')
	}
	r.drawSprite(area, r.board.PlayerSprite, snap.Player.X, snap.Player.Row, '@')

	r.drawHUD(area, snap)
}

// DrawStatus draws a centered banner over the board.
func (r *ScreenRenderer) DrawStatus(message string, bg, fg core.Color) {
	area := r.BoardRect()
	w := len([]rune(message)) + 6
	h := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	r.screen.FillRect(box, core.Cell{Rune: ' ', FG: fg, BG: bg})
	r.screen.DrawBoxColor(box, fg, bg)
	r.screen.DrawTextColor(box.X+3, box.Y+h/2, message, fg, bg)
}

// drawRow fills one board row with its background tile.
func (r *ScreenRenderer) drawRow(area core.Rect, layout BoardLayout, row int) {
	cell := core.Cell{Rune: '.'}
	if row < len(layout.RowImages) {
		if tile, ok := r.sprites.Sprite(layout.RowImages[row]); ok && tile.IsTile() {
			cell = core.Cell{Rune: tile.Fill, FG: tile.Color, BG: tile.Background}
		}
	}
	r.screen.FillRect(core.NewRect(area.X, area.Y+row*r.cellLines, area.W, r.cellLines), cell)
}

// drawSprite draws an entity glyph centered on its pixel span, on the middle
// line of its row. Parts outside the board are clipped.
func (r *ScreenRenderer) drawSprite(area core.Rect, id string, x float64, row int, fallback rune) {
	glyph := string(fallback)
	fg := core.ColorDefault
	if s, ok := r.sprites.Sprite(id); ok && s.Glyph != "" {
		glyph = s.Glyph
		fg = s.Color
	}

	left := area.X + r.toChars(x)
	span := core.Max(r.toChars(r.board.SpriteWidth), 1)
	runes := []rune(glyph)
	start := left + (span-len(runes))/2
	y := area.Y + row*r.cellLines + r.cellLines/2

	for i, ch := range runes {
		px := start + i
		if !area.Contains(px, y) {
			continue
		}
		bg := r.screen.GetCell(px, y).BG
		r.screen.SetCell(px, y, core.Cell{Rune: ch, FG: fg, BG: bg})
	}
}

// drawHUD writes lives above the board and the phase hint centered below it.
func (r *ScreenRenderer) drawHUD(area core.Rect, snap Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("·", core.Max(snap.LifeLimit-snap.Lives, 0))
	r.screen.DrawTextColor(area.X, 0, fmt.Sprintf("Lives %s", hearts), core.ColorBrightRed, core.ColorDefault)

	r.screen.DrawTextCentered(area.Bottom(), phaseHint(snap))
}

// toChars converts a pixel distance to terminal columns.
func (r *ScreenRenderer) toChars(px float64) int {
	if r.board.CellWidth <= 0 {
		return 0
	}
	return int(px / r.board.CellWidth * float64(r.cellChars))
}

// phaseHint is the one-line status shown in the HUD.
func phaseHint(snap Snapshot) string {
	switch snap.Phase {
	case PhaseRunning:
		return "Reach the water!"
	case PhaseEnded:
		if snap.Outcome == OutcomeWon {
			return "Won - R to play again"
		}
		return "Lost - R to try again"
	default:
		return "Press Enter to start"
	}
}

// statusFor returns the banner for an ended game.
func statusFor(o Outcome) (message string, bg, fg core.Color, ok bool) {
	switch o {
	case OutcomeWon:
		return WinMessage, core.ColorGreen, core.ColorBrightWhite, true
	case OutcomeLost:
		return LoseMessage, core.ColorRed, core.ColorBrightWhite, true
	default:
		return "", core.ColorDefault, core.ColorDefault, false
	}
}
