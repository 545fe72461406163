package resolve

import (
	"slices"
	"strings"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/similarity"
	"github.com/omarmubaidin/htu-infobot-go/internal/textnorm"
)

// Professor looks up a free-text query in the directory and returns zero,
// one or many candidates.
//
// The query and every record name are normalized before comparison.
// An exact normalized match short-circuits immediately with that single
// record; a later duplicate of the same name is never seen (first exact
// wins, in directory order). Otherwise a record becomes a candidate when
// the query is a substring of its name, or its similarity exceeds
// ProfessorThreshold. Candidates are ordered by descending similarity with
// directory order breaking ties; a substring hit keeps its computed score,
// so a weak substring match can rank below a strong fuzzy one.
//
// Caller policy: zero candidates -> no match, one -> resolved, several ->
// disambiguation. Every returned record is a copy; annotating it never
// corrupts the shared directory.
func Professor(directory dataset.Directory, query string) []ProfessorMatch {
	clean := textnorm.Normalize(query)
	if clean == "" {
		return nil
	}

	var candidates []ProfessorMatch
	for _, prof := range directory {
		name := textnorm.Normalize(prof.Name)
		if name == "" {
			// Unusable record, not an error.
			continue
		}

		score := similarity.Ratio(clean, name)
		if clean == name {
			return []ProfessorMatch{{
				Professor:  prof.Clone(),
				Type:       MatchExact,
				Similarity: 1.0,
			}}
		}

		switch {
		case strings.Contains(name, clean):
			candidates = append(candidates, ProfessorMatch{
				Professor:  prof.Clone(),
				Type:       MatchContains,
				Similarity: score,
			})
		case score > ProfessorThreshold:
			candidates = append(candidates, ProfessorMatch{
				Professor:  prof.Clone(),
				Type:       MatchFuzzy,
				Similarity: score,
			})
		}
	}

	slices.SortStableFunc(candidates, func(a, b ProfessorMatch) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})
	return candidates
}
