package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty string", "", ""},
		{"Lowercase passthrough", "jane doe", "jane doe"},
		{"Uppercase folded", "Jane DOE", "jane doe"},
		{"Leading and trailing spaces", "  jane doe \t", "jane doe"},
		{"Whitespace run collapsed", "jane \t  doe", "jane doe"},
		{"En dash folded", "Jane–Doe", "jane-doe"},
		{"Em dash folded", "Jane—Doe", "jane-doe"},
		{"Minus sign folded", "Jane−Doe", "jane-doe"},
		{"Full-width hyphen folded", "Jane－Doe", "jane-doe"},
		{"ASCII hyphen unchanged", "Jane-Doe", "jane-doe"},
		{"Diacritics stripped", "Renée Ångström", "renee angstrom"},
		{"Precomposed and combining equal", "José", "jose"},
		{"Combining mark form", "José", "jose"},
		{"Arabic-accent free text", "Dr. Ahmed", "dr. ahmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Jane–Doe",
		"  MIXED   Case\tText ",
		"Renée—Ångström",
		"already normalized",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeDashVariantsCollapseIdentically(t *testing.T) {
	variants := []string{"Jane‐Doe", "Jane–Doe", "Jane—Doe", "Jane−Doe", "Jane-Doe"}
	for _, v := range variants {
		if got := Normalize(v); got != "jane-doe" {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, "jane-doe")
		}
	}
}
