package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"Hello", "hello there", Greeting},
		{"Good morning", "Good Morning!", Greeting},
		{"Course query", "tell me about this course", SubjectInfo},
		{"Credits query", "how many credits is it", SubjectInfo},
		{"Professor query", "who is the instructor", ProfessorInfo},
		{"Office hours", "office hours please", ProfessorInfo},
		{"Study plan", "show me the study plan", StudyPlan},
		{"Help", "help", Help},
		{"Guide", "show me the guide", Help},
		{"General question", "why is the sky blue", GeneralQuestion},
		{"Unknown", "zzzz", Unknown},
		{"Empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// The precedence list is load-bearing: messages matching several keyword
// sets must resolve to the earlier rule. These cases pin the order.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		// greeting beats general_question ("how")
		{"hi, how are you", Greeting},
		// subject_info beats general_question ("what")
		{"what course is that", SubjectInfo},
		// subject_info beats professor_info when both appear
		{"which professor teaches this course", SubjectInfo},
		// study_plan beats subject_info ("plan" sentence mentioning a class)
		{"study plan for the senior class", StudyPlan},
		// professor_info beats help ("office" + "help")
		{"help me find an office", ProfessorInfo},
		// help beats general_question
		{"how to use", Help},
	}

	for _, tt := range tests {
		if got := Classify(tt.message); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

// Single-word keywords must match whole tokens, not substrings: "this"
// contains "hi" but is not a greeting, "address" contains "dr" but is not
// about a professor.
func TestClassifyTokenBoundaries(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"tell me about this course", SubjectInfo},
		{"what is the address", GeneralQuestion},
		{"they said so", Unknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.message); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
