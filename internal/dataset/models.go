// Package dataset holds the in-memory reference data the resolvers run
// against: the course catalog and the professor directory. Both are loaded
// once at startup and treated as read-only afterwards, so they can be
// shared across concurrent requests without locking.
package dataset

// Course is a single catalog entry.
type Course struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
}

// Catalog maps major name -> level label -> subject code -> Course.
// Major and level keys are free-text labels from the source dataset.
// Subject codes are unique within a (major, level) pair but may repeat
// across pairs.
type Catalog map[string]map[string]map[string]Course

// Professor is a single directory entry. OfficeHours maps a day name
// ("Sunday", "Monday", ...) to a free-text schedule string.
type Professor struct {
	Name        string            `json:"name"`
	School      string            `json:"school"`
	Department  string            `json:"department"`
	Email       string            `json:"email"`
	Office      string            `json:"office"`
	OfficeHours map[string]string `json:"office_hours"`
}

// Directory is the ordered professor list. Names are not unique;
// duplicates surface as multiple match candidates.
type Directory []Professor

// CourseCount returns the total number of courses across all majors and
// levels. Used by the readiness probe and dataset size metrics.
func (c Catalog) CourseCount() int {
	n := 0
	for _, levels := range c {
		for _, subjects := range levels {
			n += len(subjects)
		}
	}
	return n
}

// Clone returns a copy of p safe to annotate with per-request data.
// The schedule map is copied too; resolvers must never write to a shared
// record.
func (p Professor) Clone() Professor {
	cp := p
	if p.OfficeHours != nil {
		cp.OfficeHours = make(map[string]string, len(p.OfficeHours))
		for day, times := range p.OfficeHours {
			cp.OfficeHours[day] = times
		}
	}
	return cp
}
