package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"red", ColorRed},
		{"Bright-Green", ColorBrightGreen},
		{" black ", ColorBlack},
		{"", ColorDefault},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tc.name, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorBlack; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("round trip of %v produced %v", c, parsed)
		}
	}
}
