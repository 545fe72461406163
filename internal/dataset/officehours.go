package dataset

import (
	"regexp"
	"strings"
)

// Day names in the order the source sheets use (week starts on Saturday).
var scheduleDays = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// headerFields maps the labelled header lines of a raw office-hours block
// to Professor fields. Both capitalizations of "Office number" appear in
// the source data.
var headerFields = map[string]func(*Professor, string){
	"Name":            func(p *Professor, v string) { p.Name = v },
	"Academic School": func(p *Professor, v string) { p.School = v },
	"Department":      func(p *Professor, v string) { p.Department = v },
	"Email":           func(p *Professor, v string) { p.Email = v },
	"Office number":   func(p *Professor, v string) { p.Office = v },
	"Office Number":   func(p *Professor, v string) { p.Office = v },
}

var parenSuffix = regexp.MustCompile(`\s*\([^)]*\)`)

// ParseOfficeHours converts one raw office-hours text block into a
// Professor record. The block format is a sequence of "Label: value" header
// lines followed by a "Time/Day:" marker and per-day schedule lines;
// a line that does not start with a day name continues the previous day.
// Parenthetical suffixes are stripped from the name ("Jane Doe (HoD)" ->
// "Jane Doe"). The parser is lenient: unknown lines are skipped, missing
// fields stay empty.
func ParseOfficeHours(raw string) Professor {
	var prof Professor
	schedule := map[string]string{}

	inSchedule := false
	currentDay := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Skip the bare "Office Hours" section title.
		if strings.Contains(line, "Office Hours") && len(line) < 20 {
			continue
		}

		if strings.Contains(line, "Time/Day:") {
			inSchedule = true
			continue
		}

		if inSchedule {
			day, times, ok := splitDayLine(line)
			switch {
			case ok:
				currentDay = day
				schedule[day] = times
			case currentDay != "":
				// Continuation of the previous day's entry.
				schedule[currentDay] += " " + line
			}
			continue
		}

		for label, assign := range headerFields {
			if v, found := strings.CutPrefix(line, label+":"); found {
				assign(&prof, strings.TrimSpace(v))
				break
			}
		}
	}

	prof.Name = strings.TrimSpace(parenSuffix.ReplaceAllString(prof.Name, ""))
	prof.OfficeHours = schedule
	return prof
}

// splitDayLine splits "Monday: 10:00-12:00" into day and times.
// Returns ok=false if the line does not start with a known day name.
func splitDayLine(line string) (day, times string, ok bool) {
	for _, d := range scheduleDays {
		if strings.HasPrefix(line, d) {
			day, times, _ := strings.Cut(line, ":")
			return strings.TrimSpace(day), strings.TrimSpace(times), true
		}
	}
	return "", "", false
}

// ScheduleDays returns the canonical week order used for rendering
// office-hour schedules.
func ScheduleDays() []string {
	return scheduleDays
}
