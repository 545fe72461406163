package resolve

import (
	"testing"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
)

func testDirectory() dataset.Directory {
	return dataset.Directory{
		{
			Name:        "Jon Smyth",
			School:      "School of Computing",
			Department:  "Computer Science",
			Email:       "jon.smyth@htu.edu.jo",
			Office:      "B204",
			OfficeHours: map[string]string{"Monday": "10:00-12:00"},
		},
		{
			Name:       "Jonathan Smith",
			School:     "School of Computing",
			Department: "Computer Science",
			Email:      "jonathan.smith@htu.edu.jo",
			Office:     "B207",
		},
		{
			Name:       "Leila Haddad",
			School:     "School of Engineering",
			Department: "Civil Engineering",
			Email:      "leila.haddad@htu.edu.jo",
			Office:     "E101",
		},
	}
}

func TestProfessorExactShortCircuits(t *testing.T) {
	matches := Professor(testDirectory(), "Jon Smyth")
	if len(matches) != 1 {
		t.Fatalf("got %d candidates, want single exact result", len(matches))
	}
	if matches[0].Type != MatchExact || matches[0].Similarity != 1.0 {
		t.Errorf("match = %+v, want exact with similarity 1.0", matches[0])
	}
	if matches[0].Professor.Email != "jon.smyth@htu.edu.jo" {
		t.Errorf("Email = %q", matches[0].Professor.Email)
	}
}

func TestProfessorExactIgnoresCaseAndDiacritics(t *testing.T) {
	directory := dataset.Directory{{Name: "Renée Ångström", Email: "renee@htu.edu.jo"}}
	matches := Professor(directory, "renee angstrom")
	if len(matches) != 1 || matches[0].Type != MatchExact {
		t.Fatalf("got %+v, want single exact match after normalization", matches)
	}
}

func TestProfessorMultipleOrderedBySimilarity(t *testing.T) {
	matches := Professor(testDirectory(), "jon smith")
	if len(matches) < 2 {
		t.Fatalf("got %d candidates, want at least 2", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("candidates not in descending similarity order: %v then %v",
				matches[i-1].Similarity, matches[i].Similarity)
		}
	}
}

func TestProfessorContains(t *testing.T) {
	matches := Professor(testDirectory(), "Haddad")
	if len(matches) != 1 {
		t.Fatalf("got %d candidates, want 1", len(matches))
	}
	if matches[0].Type != MatchContains {
		t.Errorf("Type = %q, want contains", matches[0].Type)
	}
	if matches[0].Professor.Name != "Leila Haddad" {
		t.Errorf("Name = %q", matches[0].Professor.Name)
	}
}

func TestProfessorNoMatch(t *testing.T) {
	if matches := Professor(testDirectory(), "Zebulon Quixote"); len(matches) != 0 {
		t.Errorf("got %d candidates for unknown name, want 0", len(matches))
	}
}

func TestProfessorEmptyQueryAndDirectory(t *testing.T) {
	if matches := Professor(testDirectory(), "   "); len(matches) != 0 {
		t.Errorf("blank query returned %d candidates, want 0", len(matches))
	}
	if matches := Professor(dataset.Directory{}, "Jon Smyth"); len(matches) != 0 {
		t.Errorf("empty directory returned %d candidates, want 0", len(matches))
	}
}

func TestProfessorSkipsEmptyNames(t *testing.T) {
	directory := dataset.Directory{
		{Name: "   "},
		{Name: "Jon Smyth", Email: "jon.smyth@htu.edu.jo"},
	}
	matches := Professor(directory, "Jon Smyth")
	if len(matches) != 1 || matches[0].Type != MatchExact {
		t.Fatalf("got %+v, want the usable record only", matches)
	}
}

func TestProfessorDoesNotMutateDirectory(t *testing.T) {
	directory := testDirectory()
	matches := Professor(directory, "jon smith")
	if len(matches) == 0 {
		t.Fatal("expected candidates")
	}

	matches[0].Professor.Name = "Mutated"
	if matches[0].Professor.OfficeHours != nil {
		matches[0].Professor.OfficeHours["Monday"] = "never"
	}

	if directory[0].Name != "Jon Smyth" {
		t.Error("annotating a match mutated the shared directory record")
	}
	if directory[0].OfficeHours["Monday"] != "10:00-12:00" {
		t.Error("annotating a match mutated the shared schedule map")
	}
}

func TestProfessorFirstExactWinsOverLaterDuplicate(t *testing.T) {
	directory := dataset.Directory{
		{Name: "Jon Smyth", Office: "B204"},
		{Name: "Jon Smyth", Office: "C999"},
	}
	matches := Professor(directory, "jon smyth")
	if len(matches) != 1 {
		t.Fatalf("got %d candidates, want 1 (short-circuit)", len(matches))
	}
	if matches[0].Professor.Office != "B204" {
		t.Errorf("Office = %q, want the first record's B204", matches[0].Professor.Office)
	}
}
