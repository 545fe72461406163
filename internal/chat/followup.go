package chat

import (
	"fmt"
	"strings"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/intent"
)

// answerFollowUp renders the requested attribute of the currently held
// professor. The held professor is echoed back so stateless clients can
// keep threading it through subsequent requests.
func (s *Service) answerFollowUp(kind intent.FollowUp, prof dataset.Professor) Reply {
	name := prof.Name
	if name == "" {
		name = "The professor"
	}

	var text string
	switch kind {
	case intent.FollowUpSchool:
		if prof.School != "" {
			text = fmt.Sprintf("🏫 **%s** is in the: %s", name, prof.School)
		} else {
			text = fmt.Sprintf("🏫 I could not find the school for **%s**.", name)
		}

	case intent.FollowUpEmail:
		if prof.Email != "" {
			text = fmt.Sprintf("📧 The email for **%s** is: %s", name, prof.Email)
		} else {
			text = fmt.Sprintf("📧 I could not find an email for **%s**.", name)
		}

	case intent.FollowUpOffice:
		if prof.Office != "" {
			text = fmt.Sprintf("📍 The office for **%s** is: %s", name, prof.Office)
		} else {
			text = fmt.Sprintf("📍 I could not find the office number for **%s**.", name)
		}

	case intent.FollowUpSchedule:
		schedule := formatSchedule(prof.OfficeHours)
		if strings.HasPrefix(schedule, "No ") {
			text = fmt.Sprintf("🗓️ I couldn't find a specific schedule for **%s**.", name)
		} else {
			text = fmt.Sprintf("🗓️ Here is the schedule for **%s**:\n%s", name, schedule)
		}

	case intent.FollowUpColleagues:
		text = s.renderColleagues(prof)
	}

	return Reply{Text: text, Professor: &prof}
}

// renderColleagues lists other directory members of the held professor's
// department.
func (s *Service) renderColleagues(prof dataset.Professor) string {
	if prof.Department == "" {
		return fmt.Sprintf("🏢 I don't know which department **%s** belongs to.", prof.Name)
	}

	var names []string
	for _, p := range s.directory {
		if p.Department == prof.Department && p.Name != prof.Name {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("🏢 I couldn't find other professors in %s.", prof.Department)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏢 Other professors in **%s**:\n", prof.Department)
	for _, n := range names {
		fmt.Fprintf(&b, "• %s\n", n)
	}
	return strings.TrimRight(b.String(), "\n")
}
