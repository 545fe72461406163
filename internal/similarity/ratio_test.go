package similarity

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"Identical", "CS201", "CS201", 1.0},
		{"Identical ignoring case", "cs201", "CS201", 1.0},
		{"Disjoint", "abc", "xyz", 0.0},
		{"Both empty", "", "", 1.0},
		{"One empty", "abc", "", 0.0},
		// "CS2O1" vs "CS201": blocks "CS2" and "1" match, 2*4/10.
		{"Letter O for zero", "CS2O1", "CS201", 0.8},
		// "abcd" vs "bcde": block "bcd", 2*3/8.
		{"Shifted overlap", "abcd", "bcde", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"jon smith", "jonathan smith"},
		{"CS2O1", "CS201"},
		{"computer science", "cyber security"},
		{"a", "ab"},
	}

	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Ratio(%q, %q) = %v but Ratio(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"jon smith", "jon smyth"},
		{"CS101", "MATH101"},
		{"", "x"},
		{"long common substring here", "common substring"},
	}

	for _, p := range pairs {
		got := Ratio(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Ratio(%q, %q) = %v, outside [0, 1]", p[0], p[1], got)
		}
	}
}

func TestRatioExactlyOneOnlyWhenIdentical(t *testing.T) {
	if got := Ratio("jon smith", "jon smith "); almostEqual(got, 1.0) {
		t.Errorf("Ratio with trailing space = %v, want < 1.0 (callers normalize first)", got)
	}
}
