package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Span returns the visible horizontal extent of the player sprite.
func (p Player) Span(b Board) (left, right float64) {
	left = p.X + b.PlayerWidthOffset
	right = left + (b.SpriteWidth - b.PlayerWidthOffset)
	return left, right
}

// Span returns the horizontal extent of the enemy sprite.
func (e Enemy) Span(b Board) (left, right float64) {
	return e.X, e.X + b.SpriteWidth
}

// Collides reports whether e touches p. Enemies in other rows never collide.
func Collides(p Player, e Enemy, b Board) bool {
	if e.Row != p.Row {
		return false
	}
	pl, pr := p.Span(b)
	el, er := e.Span(b)
	return core.SpanOverlaps(pl, pr, el, er)
}

// FirstCollision returns the index of the first enemy touching the player,
// or -1. Later enemies are not examined.
func FirstCollision(p Player, enemies []Enemy, b Board) int {
	for i, e := range enemies {
		if Collides(p, e, b) {
			return i
		}
	}
	return -1
}
