package classify

import (
	"regexp"
	"strings"
)

// fallbackEventName is used when nothing in the text names the event.
const fallbackEventName = "Your Event"

// Name patterns capture a descriptor phrase after a trigger ("for a ...",
// "planning my ..."), bounded by trailing markers or end of string.
var eventNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for\s+(?:a|my|our|the)\s+([\w\s]+?)(?:\s+with|\s+budget|\s+of|\s+event|\s+on|$)`),
	regexp.MustCompile(`(?i)planning\s+(?:a|my|our)\s+([\w\s]+?)(?:\s+with|\s+budget|\s+of|$)`),
	regexp.MustCompile(`(?i)help\s+me\s+(?:plan|organize)\s+(?:a|my)?\s*([\w\s]+?)(?:\s+with|\s+budget|$)`),
	regexp.MustCompile(`(?i)organizing\s+(?:a|my|our)\s+([\w\s]+?)(?:\s+with|\s+budget|$)`),
}

// eventNameLabel is one row of the keyword fallback table.
type eventNameLabel struct {
	keyword string
	label   string
}

var eventNameLabels = []eventNameLabel{
	{"wedding", "Wedding"},
	{"birthday", "Birthday Party"},
	{"corporate", "Corporate Event"},
	{"festival", "Music Festival"},
	{"gala", "Gala Evening"},
	{"concert", "Concert Night"},
	{"party", "Party"},
}

// ExtractEventName pulls a display name for the event out of free text.
// The first pattern whose trimmed, title-cased capture is strictly between 2
// and 60 characters wins; otherwise a keyword label is used, and finally the
// generic fallback.
func ExtractEventName(text string) string {
	for _, pattern := range eventNamePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimRight(strings.TrimSpace(m[1]), "., ")
		name = titleCase(name)
		if len(name) > 2 && len(name) < 60 {
			return name
		}
	}

	t := strings.ToLower(text)
	for _, row := range eventNameLabels {
		if strings.Contains(t, row.keyword) {
			return row.label
		}
	}

	return fallbackEventName
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
