package classify

import "strings"

// DefaultEventType is returned when no keyword set matches.
const DefaultEventType = "default"

// eventTypeRule is one row of the event-type decision table.
type eventTypeRule struct {
	eventType string
	keywords  []string
}

// Event-type rules in priority order. Overlapping text ("corporate wedding
// party") resolves to the first matching row, so the ordering is part of the
// contract and must not be rearranged.
var eventTypeRules = []eventTypeRule{
	{"wedding", []string{"wedding", "marriage", "bride", "groom", "nuptial"}},
	{"corporate", []string{"corporate", "company", "office", "conference", "business", "launch", "product launch"}},
	{"birthday", []string{"birthday", "bday", "birth day"}},
	{"festival", []string{"festival", "fest", "music festival"}},
	{"gala", []string{"gala", "charity", "fundraiser", "award", "black tie"}},
	{"concert", []string{"concert", "live show", "performance night"}},
	{"party", []string{"party", "celebration", "get together", "house party"}},
}

// DetectEventType maps free text to an event type by case-insensitive keyword
// containment, first matching rule wins. Unmatched text yields
// DefaultEventType.
func DetectEventType(text string) string {
	t := strings.ToLower(text)
	for _, rule := range eventTypeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(t, keyword) {
				return rule.eventType
			}
		}
	}
	return DefaultEventType
}

// EventTypes returns all known event types, highest priority first, excluding
// DefaultEventType.
func EventTypes() []string {
	types := make([]string, len(eventTypeRules))
	for i, rule := range eventTypeRules {
		types[i] = rule.eventType
	}
	return types
}
