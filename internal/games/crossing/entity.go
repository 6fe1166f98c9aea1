package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Direction is a discrete player move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Enemy runs left to right along one hazard row.
// Enemies are recycled on wraparound, never created mid-game.
type Enemy struct {
	X     float64 // Left edge in pixels
	Row   int
	Speed float64 // Pixels per second
}

// Spawn draws a new row and speed and puts the enemy at the track start.
func (e *Enemy) Spawn(rng *rand.Rand, b Board) {
	e.X = 0
	e.Speed = b.MinSpeed + rng.Float64()*(b.MaxSpeed-b.MinSpeed) + b.SpeedBonus
	e.Row = b.HazardRows[rng.Intn(len(b.HazardRows))]
}

// Update advances the enemy by dt seconds and respawns it once it passes
// the right edge of the track. Returns true if it respawned.
func (e *Enemy) Update(dt float64, rng *rand.Rand, b Board) bool {
	if dt < 0 {
		dt = 0
	}
	e.X += e.Speed * dt
	if e.X > b.TrackWidth() {
		e.Spawn(rng, b)
		return true
	}
	return false
}

// Player is the sprite the user steers across the board.
type Player struct {
	Col        int
	Row        int
	X          float64 // Derived from Col
	Y          float64 // Derived from Row
	Collisions int
}

// MoveBy steps one cell in direction d, clamped to the board.
func (p *Player) MoveBy(d Direction, b Board) {
	switch d {
	case DirUp:
		p.Row--
	case DirDown:
		p.Row++
	case DirLeft:
		p.Col--
	case DirRight:
		p.Col++
	}
	p.Col = core.Clamp(p.Col, 0, b.Columns-1)
	p.Row = core.Clamp(p.Row, 0, b.MaxRow())
}

// ToHome puts the player back on the start cell.
func (p *Player) ToHome(b Board) {
	p.Col = b.HomeCol
	p.Row = b.HomeRow
}

// UpdatePosition recomputes the pixel position from the grid cell.
func (p *Player) UpdatePosition(b Board) {
	p.X = float64(p.Col) * b.CellWidth
	p.Y = float64(p.Row)*b.RowHeight - b.RowOffset
}
