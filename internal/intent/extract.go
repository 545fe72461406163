package intent

import (
	"regexp"
	"strings"
)

// subjectCodePattern matches course codes like "CS201" or "cs 201":
// two to four letters, optional spacing, exactly three digits.
var subjectCodePattern = regexp.MustCompile(`([a-zA-Z]{2,4}\s*\d{3})`)

// studyPlanPattern pulls (ordinal, major) out of sentences like
// "show me the second year plan for computer science".
// Applied to the lower-cased message.
var studyPlanPattern = regexp.MustCompile(
	`(show|tell|give|what is|find)\s+(me\s+)?(the\s+)?(first|second|third|fourth|fifth|1st|2nd|3rd|4th|5th)\s+year\s+(plan\s+)?(for\s+)?([a-zA-Z\s]+)`)

// ExtractSubjectCode returns the first subject-code-shaped token in the
// message, or ok=false if none is present.
func ExtractSubjectCode(message string) (string, bool) {
	m := subjectCodePattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// PlanQuery is the (level, major) slot pair extracted from a study-plan
// sentence. Both values are raw capture text; resolution and validation
// happen downstream.
type PlanQuery struct {
	Level string
	Major string
}

// ExtractPlanQuery parses a study-plan request out of the message.
// Returns ok=false when the message does not follow the pattern; parsing
// failure is independent of whether the plan actually exists.
func ExtractPlanQuery(message string) (PlanQuery, bool) {
	m := studyPlanPattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return PlanQuery{}, false
	}
	return PlanQuery{
		Level: m[4],
		Major: strings.TrimSpace(m[7]),
	}, true
}

// FollowUp identifies which attribute of the currently held professor a
// follow-up question asks about.
type FollowUp string

const (
	FollowUpSchool     FollowUp = "school"
	FollowUpEmail      FollowUp = "email"
	FollowUpOffice     FollowUp = "office"
	FollowUpSchedule   FollowUp = "schedule"
	FollowUpColleagues FollowUp = "colleagues"
)

// followUpRules is evaluated in order; first hit wins, mirroring the
// precedence of the main classifier.
var followUpRules = []struct {
	kind     FollowUp
	keywords []string
}{
	{FollowUpColleagues, []string{"colleague", "colleagues", "who else", "same department"}},
	{FollowUpSchool, []string{"school", "college", "faculty"}},
	{FollowUpEmail, []string{"email", "contact"}},
	{FollowUpOffice, []string{"office", "location", "room"}},
	{FollowUpSchedule, []string{"schedule", "hours", "when", "times"}},
}

// DetectFollowUp classifies a message as a follow-up question about the
// current entity. Only meaningful while the conversation holds one.
// Keyword matching works like Classify: whole tokens for single words,
// substrings for phrases.
func DetectFollowUp(message string) (FollowUp, bool) {
	m := strings.ToLower(message)
	tokens := tokenSet(m)
	for _, r := range followUpRules {
		for _, kw := range r.keywords {
			if matchKeyword(m, tokens, kw) {
				return r.kind, true
			}
		}
	}
	return "", false
}
