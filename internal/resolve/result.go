// Package resolve implements the entity matching engine: fuzzy lookup of
// subject codes, professor names and study plans against the reference
// datasets. Resolvers are pure functions of (query, dataset); they never
// mutate shared records and are safe for concurrent use.
package resolve

import "github.com/omarmubaidin/htu-infobot-go/internal/dataset"

// MatchType tags how a candidate was matched.
type MatchType string

const (
	// MatchExact means the normalized query equals the stored key/name.
	MatchExact MatchType = "exact"
	// MatchContains means the normalized query is a substring of the stored name.
	MatchContains MatchType = "contains"
	// MatchFuzzy means the similarity score exceeded the threshold without
	// exact equality.
	MatchFuzzy MatchType = "fuzzy"
)

// Similarity thresholds. Subject codes and professor names use 0.6.
// Major names are longer and noisier, so study-plan major matching is
// stricter at 0.7. Scores must be strictly greater than the threshold.
const (
	SubjectThreshold   = 0.6
	ProfessorThreshold = 0.6
	MajorThreshold     = 0.7
)

// SubjectMatch is the result of a subject code lookup.
// Code always holds the stored catalog code; for fuzzy matches Query keeps
// what the user typed so the caller can render a "did you mean" notice.
type SubjectMatch struct {
	Major      string         `json:"major"`
	Level      string         `json:"level"`
	Code       string         `json:"code"`
	Course     dataset.Course `json:"course"`
	Type       MatchType      `json:"match_type"`
	Query      string         `json:"query,omitempty"`
	Similarity float64        `json:"similarity,omitempty"`
}

// ProfessorMatch is one candidate from a professor lookup. Professor is a
// copy of the directory record; annotations never touch shared data.
type ProfessorMatch struct {
	Professor  dataset.Professor `json:"professor"`
	Type       MatchType         `json:"match_type"`
	Similarity float64           `json:"similarity"`
}

// StudyPlan is the resolved course listing for one (major, level) pair.
// Plan references catalog data and must be treated as read-only.
type StudyPlan struct {
	Major string                    `json:"major"`
	Level string                    `json:"level"`
	Plan  map[string]dataset.Course `json:"plan"`
}
