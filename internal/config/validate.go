package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration describes a playable board.
// All problems are reported together, wrapped in ErrInvalidConfig.
func (c CrossingConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	b := c.Board
	if b.Columns < 1 {
		add("board.columns must be at least 1, got %d", b.Columns)
	}
	if b.Rows < 2 {
		add("board.rows must be at least 2, got %d", b.Rows)
	}
	if b.CellWidth <= 0 {
		add("board.cell_width must be positive, got %g", b.CellWidth)
	}
	if b.RowHeight <= 0 {
		add("board.row_height must be positive, got %g", b.RowHeight)
	}
	if b.GoalRow < 0 || b.GoalRow >= b.Rows {
		add("board.goal_row %d is outside the board", b.GoalRow)
	}
	if len(b.HazardRows) == 0 {
		add("board.hazard_rows must name at least one row")
	}
	for _, r := range b.HazardRows {
		switch {
		case r < 0 || r >= b.Rows:
			add("board.hazard_rows entry %d is outside the board", r)
		case r == b.GoalRow:
			add("board.hazard_rows entry %d is the goal row", r)
		case r == c.Player.HomeRow:
			add("board.hazard_rows entry %d is the player's home row", r)
		}
	}
	if len(b.RowImages) != b.Rows {
		add("board.row_images has %d entries, expected one per row (%d)", len(b.RowImages), b.Rows)
	}

	e := c.Enemies
	if e.Count < 1 {
		add("enemies.count must be at least 1, got %d", e.Count)
	}
	if e.MinSpeed < 0 {
		add("enemies.min_speed must not be negative, got %g", e.MinSpeed)
	}
	if e.MaxSpeed <= e.MinSpeed {
		add("enemies.max_speed (%g) must exceed min_speed (%g)", e.MaxSpeed, e.MinSpeed)
	}
	// Enemies only wrap at the right edge, so every drawn speed must be positive.
	if e.MinSpeed+e.SpeedBonus <= 0 {
		add("enemies.min_speed + speed_bonus must be positive, got %g", e.MinSpeed+e.SpeedBonus)
	}
	if e.Sprite == "" {
		add("enemies.sprite must be set")
	}

	p := c.Player
	if p.HomeCol < 0 || p.HomeCol >= b.Columns {
		add("player.home_col %d is outside the board", p.HomeCol)
	}
	if p.HomeRow < 0 || p.HomeRow >= b.Rows {
		add("player.home_row %d is outside the board", p.HomeRow)
	}
	if p.HomeRow == b.GoalRow {
		add("player.home_row must differ from board.goal_row")
	}
	if p.WidthOffset < 0 {
		add("player.width_offset must not be negative, got %g", p.WidthOffset)
	}
	if p.Sprite == "" {
		add("player.sprite must be set")
	}

	if c.Rules.LifeLimit < 1 {
		add("rules.life_limit must be at least 1, got %d", c.Rules.LifeLimit)
	}
	if c.Loop.MaxFrameDelta <= 0 {
		add("loop.max_frame_delta must be positive, got %g", c.Loop.MaxFrameDelta)
	}
	if c.Display.CellChars < 1 || c.Display.CellLines < 1 {
		add("display.cell_chars and display.cell_lines must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
