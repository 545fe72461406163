package resolve

import (
	"slices"
	"strings"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/similarity"
)

// Subject looks up a subject code in the catalog. The exact pass compares
// the upper-cased query against stored codes across every (major, level)
// bucket; only if nothing matches exactly does the fuzzy pass score the raw
// query against all codes, keeping the single best score strictly above
// SubjectThreshold. Buckets are walked in sorted key order so ties resolve
// the same way on every call. Returns ok=false when nothing matches:
// absence is a result, not an error.
func Subject(catalog dataset.Catalog, query string) (SubjectMatch, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(catalog) == 0 {
		return SubjectMatch{}, false
	}

	upper := strings.ToUpper(query)
	for _, major := range sortedKeys(catalog) {
		for _, level := range sortedKeys(catalog[major]) {
			if course, ok := catalog[major][level][upper]; ok {
				return SubjectMatch{
					Major:      major,
					Level:      level,
					Code:       upper,
					Course:     course,
					Type:       MatchExact,
					Similarity: 1.0,
				}, true
			}
		}
	}

	var best SubjectMatch
	bestScore := SubjectThreshold
	found := false

	for _, major := range sortedKeys(catalog) {
		for _, level := range sortedKeys(catalog[major]) {
			for _, code := range sortedKeys(catalog[major][level]) {
				score := similarity.Ratio(query, code)
				if score > bestScore {
					bestScore = score
					found = true
					best = SubjectMatch{
						Major:      major,
						Level:      level,
						Code:       code,
						Course:     catalog[major][level][code],
						Type:       MatchFuzzy,
						Query:      query,
						Similarity: score,
					}
				}
			}
		}
	}

	return best, found
}

// sortedKeys returns map keys in sorted order. Go maps iterate in random
// order; resolution must be repeatable across calls or context-dependent
// follow-ups would flap between tied candidates.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
