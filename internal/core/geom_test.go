package core

import "testing"

func TestSpanOverlaps(t *testing.T) {
	// Player sprite at column 2: visible span [219, 303].
	const pl, pr = 219.0, 303.0

	tests := []struct {
		name     string
		eL, eR   float64
		expected bool
	}{
		{"enemy on top of player", 202, 303, true},
		{"enemy right edge touches player left", 118, 219, true},
		{"enemy left edge touches player right", 303, 404, true},
		{"enemy just short", 117.9, 218.9, false},
		{"enemy just past", 303.1, 404.1, false},
		{"enemy wider than player", 0, 505, true},
		{"zero-width span on edge", 219, 219, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpanOverlaps(pl, pr, tc.eL, tc.eR); got != tc.expected {
				t.Errorf("SpanOverlaps() = %v, expected %v", got, tc.expected)
			}
			if got := SpanOverlaps(tc.eL, tc.eR, pl, pr); got != tc.expected {
				t.Errorf("SpanOverlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsClipsAtEdges(t *testing.T) {
	// A 5x6 board of 10x3 cells drawn at (15, 2).
	board := NewRect(15, 2, 50, 18)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first cell", 15, 2, true},
		{"last cell", 64, 19, true},
		{"one past right edge", 65, 10, false},
		{"one past bottom", 30, 20, false},
		{"HUD line", 30, 0, false},
		{"left margin", 14, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if cx, cy := board.Center(); cx != 40 || cy != 11 {
		t.Errorf("Center() = (%d, %d), expected (40, 11)", cx, cy)
	}
}

func TestClampFrameDelta(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"backwards clock", -0.5, 0},
		{"host stall", 3, 0.25},
		{"exactly the cap", 0.25, 0.25},
	}

	for _, tc := range tests {
		if got := ClampF(tc.dt, 0, 0.25); got != tc.expected {
			t.Errorf("%s: ClampF(%v) = %v, expected %v", tc.name, tc.dt, got, tc.expected)
		}
	}
}

func TestClampKeepsPlayerOnBoard(t *testing.T) {
	for col := -3; col <= 8; col++ {
		got := Clamp(col, 0, 4)
		if got < 0 || got > 4 {
			t.Errorf("Clamp(%d, 0, 4) = %d, outside the board", col, got)
		}
		if col >= 0 && col <= 4 && got != col {
			t.Errorf("Clamp(%d, 0, 4) = %d, expected unchanged", col, got)
		}
	}
}
