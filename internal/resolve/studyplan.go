package resolve

import (
	"strings"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/similarity"
)

// levelAliases maps ordinal words and abbreviations to canonical level
// labels. Matching is by containment in the level query, checked in this
// order (word form before abbreviation, years ascending).
var levelAliases = []struct {
	alias string
	label string
}{
	{"first", "First Year"},
	{"1st", "First Year"},
	{"second", "Second Year"},
	{"2nd", "Second Year"},
	{"third", "Third Year"},
	{"3rd", "Third Year"},
	{"fourth", "Fourth Year"},
	{"4th", "Fourth Year"},
	{"fifth", "Fifth Year"},
	{"5th", "Fifth Year"},
}

// StudyPlanFor looks up the course listing for a (major, level) query pair.
// The major resolves by similarity against catalog keys with the stricter
// MajorThreshold; "engineering" is folded to "eng" first, matching how the
// source catalog abbreviates program names. The level resolves through the
// fixed alias table and fails closed: an unrecognized level ("sixth")
// yields no result rather than a fabricated label.
func StudyPlanFor(catalog dataset.Catalog, majorQuery, levelQuery string) (StudyPlan, bool) {
	majorKey, ok := resolveMajor(catalog, majorQuery)
	if !ok {
		return StudyPlan{}, false
	}

	label, ok := ResolveLevel(levelQuery)
	if !ok {
		return StudyPlan{}, false
	}

	plan, ok := catalog[majorKey][label]
	if !ok || len(plan) == 0 {
		return StudyPlan{}, false
	}

	return StudyPlan{Major: majorKey, Level: label, Plan: plan}, true
}

// resolveMajor finds the catalog major key most similar to the query,
// requiring a score strictly above MajorThreshold. Sorted iteration keeps
// tie-breaking stable across calls.
func resolveMajor(catalog dataset.Catalog, query string) (string, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(query), "engineering", "eng"))
	if normalized == "" {
		return "", false
	}

	best := ""
	bestScore := MajorThreshold
	for _, key := range sortedKeys(catalog) {
		score := similarity.Ratio(normalized, strings.ToLower(key))
		if score > bestScore {
			bestScore = score
			best = key
		}
	}
	return best, best != ""
}

// ResolveLevel maps an ordinal level query ("2nd", "second year") to its
// canonical label. Returns ok=false for unrecognized input.
func ResolveLevel(levelQuery string) (string, bool) {
	q := strings.ToLower(levelQuery)
	for _, entry := range levelAliases {
		if strings.Contains(q, entry.alias) {
			return entry.label, true
		}
	}
	return "", false
}
