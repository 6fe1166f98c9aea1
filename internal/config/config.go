// Package config provides YAML-based game configuration loading and
// validation for the crossing game.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Player  PlayerConfig  `yaml:"player"`
	Rules   RulesConfig   `yaml:"rules"`
	Loop    LoopConfig    `yaml:"loop"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid the player crosses.
type BoardConfig struct {
	Columns    int      `yaml:"columns"`
	Rows       int      `yaml:"rows"`
	CellWidth  float64  `yaml:"cell_width"`  // Pixel width of one column
	RowHeight  float64  `yaml:"row_height"`  // Pixel height of one row
	RowOffset  float64  `yaml:"row_offset"`  // Vertical alignment for sprites of differing heights
	GoalRow    int      `yaml:"goal_row"`    // Reaching this row wins
	HazardRows []int    `yaml:"hazard_rows"` // Rows enemies may occupy
	RowImages  []string `yaml:"row_images"`  // Background sprite per row, top to bottom
}

// EnemyConfig defines enemy count and movement.
type EnemyConfig struct {
	Count      int     `yaml:"count"`
	MinSpeed   float64 `yaml:"min_speed"`   // Inclusive
	MaxSpeed   float64 `yaml:"max_speed"`   // Exclusive
	SpeedBonus float64 `yaml:"speed_bonus"` // Added to every drawn speed
	Sprite     string  `yaml:"sprite"`
}

// PlayerConfig defines the player start cell and hitbox.
type PlayerConfig struct {
	HomeCol     int     `yaml:"home_col"`
	HomeRow     int     `yaml:"home_row"`
	WidthOffset float64 `yaml:"width_offset"` // Transparent margin inside the sprite
	Sprite      string  `yaml:"sprite"`
}

// RulesConfig defines win/loss rules.
type RulesConfig struct {
	LifeLimit int `yaml:"life_limit"` // Collisions allowed before the game is lost
}

// LoopConfig defines frame timing limits.
type LoopConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds; longer host stalls are clamped
}

// DisplayConfig defines how a board cell maps to terminal cells.
type DisplayConfig struct {
	CellChars int `yaml:"cell_chars"`
	CellLines int `yaml:"cell_lines"`
}
