// Package intent provides coarse keyword-based message classification and
// the small regex parsers that pull query slots (subject codes, study-plan
// level and major, follow-up kinds) out of free text. Pure functions, no
// dependencies on the resolvers.
package intent

import (
	"strings"
	"unicode"
)

// Intent is the coarse classification of a user message.
type Intent string

const (
	Greeting        Intent = "greeting"
	Help            Intent = "help"
	SubjectInfo     Intent = "subject_info"
	ProfessorInfo   Intent = "professor_info"
	StudyPlan       Intent = "study_plan"
	GeneralQuestion Intent = "general_question"
	Unknown         Intent = "unknown"
)

// rule pairs an intent with its trigger keywords. Single-word keywords
// match whole tokens only ("hi" does not fire inside "this"); multi-word
// keywords match by substring.
type rule struct {
	intent   Intent
	keywords []string
}

// rules is the precedence list: evaluated top to bottom, first hit wins.
// Reordering changes classification outcomes (e.g. "how many credits" is
// subject_info, not general_question), so the order is pinned by tests.
var rules = []rule{
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{StudyPlan, []string{"study plan", "year plan"}},
	{SubjectInfo, []string{"course", "courses", "subject", "subjects", "class", "classes", "credit", "credits", "prerequisite", "prerequisites", "syllabus"}},
	{ProfessorInfo, []string{"professor", "professors", "doctor", "dr", "eng", "teacher", "teachers", "instructor", "instructors", "office", "hours", "schedule"}},
	{Help, []string{"help", "what can you do", "how to use", "guide"}},
	{GeneralQuestion, []string{"what", "how", "when", "where", "why", "who"}},
}

// Classify tags a message with its coarse intent. Total function; an empty
// or unrecognized message is Unknown.
func Classify(message string) Intent {
	m := strings.ToLower(message)
	tokens := tokenSet(m)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if matchKeyword(m, tokens, kw) {
				return r.intent
			}
		}
	}
	return Unknown
}

// tokenSet splits the lower-cased message into word tokens, dropping
// punctuation.
func tokenSet(m string) map[string]struct{} {
	words := strings.FieldsFunc(m, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// matchKeyword applies the token-or-phrase matching rule.
func matchKeyword(m string, tokens map[string]struct{}, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(m, kw)
	}
	_, ok := tokens[kw]
	return ok
}
