package classify

import "strings"

// Planning keywords signal that the user wants an organized plan rather than a
// provider lookup.
var planKeywords = []string{
	"plan", "planning", "organize", "help me", "budget", "breakdown",
	"schedule", "timeline", "prepare", "arrange", "full plan", "complete",
	"how much", "what do i need", "guide", "checklist",
}

// Event keywords signal that the message is about an occasion at all.
var eventKeywords = []string{
	"wedding", "party", "corporate", "birthday", "festival", "gala",
	"concert", "event", "celebration", "ceremony",
}

// IsPlanRequest reports whether a message asks for a full event plan.
// True when the text pairs a planning keyword with an event keyword, or an
// event keyword with a parseable budget.
func IsPlanRequest(text string) bool {
	t := strings.ToLower(text)
	hasPlan := containsAny(t, planKeywords)
	hasEvent := containsAny(t, eventKeywords)
	_, hasBudget := ExtractBudget(text)
	return (hasPlan && hasEvent) || (hasEvent && hasBudget)
}

func containsAny(t string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}
