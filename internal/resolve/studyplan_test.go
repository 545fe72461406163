package resolve

import (
	"testing"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
)

func TestStudyPlanFor(t *testing.T) {
	catalog := testCatalog()

	plan, ok := StudyPlanFor(catalog, "computer science", "2nd")
	if !ok {
		t.Fatal("StudyPlanFor() found nothing for computer science / 2nd")
	}
	if plan.Major != "Computer Science" {
		t.Errorf("Major = %q", plan.Major)
	}
	if plan.Level != "Second Year" {
		t.Errorf("Level = %q, want Second Year", plan.Level)
	}
	if _, ok := plan.Plan["CS201"]; !ok {
		t.Error("plan missing CS201")
	}
}

func TestStudyPlanLevelWordForms(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"first", "First Year", true},
		{"1st", "First Year", true},
		{"second year", "Second Year", true},
		{"the 3rd", "Third Year", true},
		{"FOURTH", "Fourth Year", true},
		{"5th", "Fifth Year", true},
		{"sixth", "", false},
		{"year", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ResolveLevel(tt.query)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveLevel(%q) = %q, %v; want %q, %v", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStudyPlanUnknownLevelFailsClosed(t *testing.T) {
	if _, ok := StudyPlanFor(testCatalog(), "computer science", "sixth"); ok {
		t.Error("StudyPlanFor() fabricated a level for 'sixth'")
	}
}

func TestStudyPlanUnknownMajor(t *testing.T) {
	if _, ok := StudyPlanFor(testCatalog(), "astrobiology", "first"); ok {
		t.Error("StudyPlanFor() matched a nonexistent major")
	}
}

func TestStudyPlanLevelMissingUnderMajor(t *testing.T) {
	// Cyber Security has no Second Year in the test catalog.
	if _, ok := StudyPlanFor(testCatalog(), "cyber security", "2nd"); ok {
		t.Error("StudyPlanFor() returned a plan for a level the major does not offer")
	}
}

func TestStudyPlanEmptyInputs(t *testing.T) {
	if _, ok := StudyPlanFor(testCatalog(), "", "first"); ok {
		t.Error("StudyPlanFor() matched an empty major query")
	}
	if _, ok := StudyPlanFor(dataset.Catalog{}, "computer science", "first"); ok {
		t.Error("StudyPlanFor() matched against an empty catalog")
	}
}

func TestStudyPlanEngineeringAbbreviation(t *testing.T) {
	catalog := dataset.Catalog{
		"Civil Eng": {
			"First Year": {
				"CE101": {Name: "Statics", Description: "Forces.", Credits: 3},
			},
		},
	}
	plan, ok := StudyPlanFor(catalog, "civil engineering", "first")
	if !ok {
		t.Fatal("StudyPlanFor() did not fold 'engineering' to 'eng'")
	}
	if plan.Major != "Civil Eng" {
		t.Errorf("Major = %q", plan.Major)
	}
}
