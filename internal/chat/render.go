package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/resolve"
)

// Canned button sets for prompts.
var defaultButtons = []string{"Find a Course", "Find a Professor", "View a Study Plan"}

var greetings = []string{
	"👋 Hello! I'm your HTU Info Assistant. How can I help you today?",
	"🎓 Welcome to HTU Info Bot! I can help you find course information and professor office hours.",
	"Hi there! I'm here to help with HTU academic information. What would you like to know?",
}

const helpText = `🤖 **HTU Info Bot - Smart Assistant**

I can help you with:

📚 **Course Information:**
• Search by subject code (e.g., CS201, CS101)
• Get course details, credits, and descriptions

👨‍🏫 **Professor Office Hours:**
• Search by professor name (e.g., Dr. Ahmed Bataineh)
• Get office hours, locations, and contact info

📅 **Study Plans:**
• Ask for a year plan (e.g., "show me the second year plan for computer science")

💡 **Smart Features:**
• Fuzzy matching for similar names/codes
• Context-aware follow-up questions

Try asking me about any course or professor!`

func renderGreeting() Reply {
	return Reply{Text: greetings[rand.Intn(len(greetings))]}
}

func renderHelp() Reply {
	return Reply{Text: helpText}
}

func renderUnknown() Reply {
	return Reply{
		Text:    "🤔 I'm not sure I understood. Here are some things you can ask me:",
		Buttons: defaultButtons,
	}
}

func renderSubject(m resolve.SubjectMatch) Reply {
	var b strings.Builder

	if m.Type == resolve.MatchFuzzy {
		fmt.Fprintf(&b, "🔍 I found a similar course: **%s**\n\n", m.Code)
	}
	fmt.Fprintf(&b, "📚 **%s - %s**\n\n", m.Code, m.Course.Name)
	fmt.Fprintf(&b, "**Description:** %s\n", m.Course.Description)
	fmt.Fprintf(&b, "**Credits:** %d\n", m.Course.Credits)
	fmt.Fprintf(&b, "**Level:** %s\n", m.Level)
	fmt.Fprintf(&b, "**Program:** %s\n", m.Major)

	if m.Type == resolve.MatchFuzzy {
		fmt.Fprintf(&b, "\n💡 *Did you mean %s instead of %s?*\n", m.Code, m.Query)
	}
	b.WriteString("\n💡 **You can also ask:**\n• Which professors teach this course?\n• What is the study plan for this program?")

	return Reply{Text: b.String()}
}

func renderProfessor(m resolve.ProfessorMatch) Reply {
	prof := m.Professor
	var b strings.Builder

	if m.Type == resolve.MatchFuzzy {
		fmt.Fprintf(&b, "🤖 I found someone with a similar name: **%s**.\n\n", prof.Name)
	} else {
		fmt.Fprintf(&b, "👨‍🏫 Here is the information for **%s**:\n\n", prof.Name)
	}

	fmt.Fprintf(&b, "**School:** %s\n", orNA(prof.School))
	fmt.Fprintf(&b, "**Department:** %s\n", orNA(prof.Department))
	fmt.Fprintf(&b, "**Email:** %s\n", orNA(prof.Email))
	fmt.Fprintf(&b, "**Office:** %s\n\n", orNA(prof.Office))
	fmt.Fprintf(&b, "**Office Hours:**\n%s", formatSchedule(prof.OfficeHours))
	b.WriteString("\n\n💡 You can now ask me for this professor's **email**, **office**, or **schedule** separately.")

	return Reply{Text: b.String(), Professor: &prof}
}

func renderDisambiguation(query string, matches []resolve.ProfessorMatch, limit int) Reply {
	buttons := make([]string, 0, limit)
	for _, m := range matches {
		if len(buttons) == limit {
			break
		}
		buttons = append(buttons, m.Professor.Name)
	}
	return Reply{
		Text:    fmt.Sprintf("🤔 I found a few people matching **%s**. Who are you looking for?", query),
		Buttons: buttons,
	}
}

func renderPlan(plan resolve.StudyPlan) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 Here is the **%s** plan for **%s**:\n\n", plan.Level, plan.Major)
	for _, code := range sortedCodes(plan.Plan) {
		course := plan.Plan[code]
		fmt.Fprintf(&b, "• **%s**: %s (%d credits)\n", code, course.Name, course.Credits)
	}
	return Reply{Text: b.String()}
}

func renderPlanNotFound(majorQuery string) Reply {
	return Reply{Text: fmt.Sprintf("Sorry, I couldn't find a study plan for '%s'.", majorQuery)}
}

// formatSchedule renders the office-hours map in canonical week order,
// skipping placeholder entries ("None", "N/A", "Office Hours").
func formatSchedule(hours map[string]string) string {
	if len(hours) == 0 {
		return "No schedule information available."
	}

	var lines []string
	for _, day := range dataset.ScheduleDays() {
		times, ok := hours[day]
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(times)) {
		case "", "none", "n/a", "office hours":
			continue
		}
		lines = append(lines, fmt.Sprintf("• **%s:** %s", day, times))
	}

	if len(lines) == 0 {
		return "No specific office hours are listed."
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
