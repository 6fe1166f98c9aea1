package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Columns:    5,
			Rows:       6,
			CellWidth:  101,
			RowHeight:  83,
			RowOffset:  20,
			GoalRow:    0,
			HazardRows: []int{1, 2, 3},
			RowImages: []string{
				"water-block",
				"stone-block",
				"stone-block",
				"stone-block",
				"grass-block",
				"grass-block",
			},
		},
		Enemies: EnemyConfig{
			Count:      3,
			MinSpeed:   100,
			MaxSpeed:   400,
			SpeedBonus: 0,
			Sprite:     "enemy-bug",
		},
		Player: PlayerConfig{
			HomeCol:     2,
			HomeRow:     5,
			WidthOffset: 17,
			Sprite:      "char-boy",
		},
		Rules: RulesConfig{
			LifeLimit: 3,
		},
		Loop: LoopConfig{
			MaxFrameDelta: 0.25,
		},
		Display: DisplayConfig{
			CellChars: 10,
			CellLines: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
