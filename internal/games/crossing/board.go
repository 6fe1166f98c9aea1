// Package crossing implements a road crossing arcade game.
// The player walks from the bottom of a grid to the goal row while enemies
// run left to right along the hazard rows. The package holds the simulation
// core and a renderer; the host owns input, frame scheduling and the terminal.
package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// ImageSource is the part of the asset provider the simulation reads.
type ImageSource interface {
	ImageWidth(id string) float64
}

// Board holds the layout constants of one game, in sprite pixels.
type Board struct {
	Columns   int
	Rows      int
	CellWidth float64
	RowHeight float64
	RowOffset float64

	GoalRow    int
	HazardRows []int
	RowImages  []string

	HomeCol int
	HomeRow int

	SpriteWidth       float64 // Width of the enemy image, also used for the player hitbox
	PlayerWidthOffset float64 // Transparent margin on the left of the player image

	MinSpeed   float64
	MaxSpeed   float64
	SpeedBonus float64

	EnemySprite  string
	PlayerSprite string
}

// NewBoard builds a board from configuration. The sprite width comes from
// the image provider; an unknown or unloaded image falls back to the cell width.
func NewBoard(cfg config.CrossingConfig, images ImageSource) Board {
	spriteWidth := cfg.Board.CellWidth
	if images != nil {
		if w := images.ImageWidth(cfg.Enemies.Sprite); w > 0 {
			spriteWidth = w
		}
	}

	return Board{
		Columns:           cfg.Board.Columns,
		Rows:              cfg.Board.Rows,
		CellWidth:         cfg.Board.CellWidth,
		RowHeight:         cfg.Board.RowHeight,
		RowOffset:         cfg.Board.RowOffset,
		GoalRow:           cfg.Board.GoalRow,
		HazardRows:        append([]int(nil), cfg.Board.HazardRows...),
		RowImages:         append([]string(nil), cfg.Board.RowImages...),
		HomeCol:           cfg.Player.HomeCol,
		HomeRow:           cfg.Player.HomeRow,
		SpriteWidth:       spriteWidth,
		PlayerWidthOffset: cfg.Player.WidthOffset,
		MinSpeed:          cfg.Enemies.MinSpeed,
		MaxSpeed:          cfg.Enemies.MaxSpeed,
		SpeedBonus:        cfg.Enemies.SpeedBonus,
		EnemySprite:       cfg.Enemies.Sprite,
		PlayerSprite:      cfg.Player.Sprite,
	}
}

// DefaultBoard returns the board described by the default configuration.
func DefaultBoard() Board {
	return NewBoard(config.DefaultCrossingConfig(), nil)
}

// TrackWidth is the horizontal extent enemies travel before wrapping.
func (b Board) TrackWidth() float64 {
	return float64(b.Columns) * b.SpriteWidth
}

// MaxRow is the bottom row index.
func (b Board) MaxRow() int {
	return b.Rows - 1
}

// Layout returns the presentation constants the renderer needs.
func (b Board) Layout() BoardLayout {
	return BoardLayout{
		Rows:      b.Rows,
		Columns:   b.Columns,
		RowImages: append([]string(nil), b.RowImages...),
	}
}

// IsHazardRow reports whether enemies may occupy row.
func (b Board) IsHazardRow(row int) bool {
	for _, r := range b.HazardRows {
		if r == row {
			return true
		}
	}
	return false
}
