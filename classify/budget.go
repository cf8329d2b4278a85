package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// minBudget is the noise floor for extracted dollar amounts. Anything below it
// (a "$5" skill level in a bio, a street number) is not a budget.
const minBudget = 100

// budgetPattern is one row of the budget decision table.
type budgetPattern struct {
	re       *regexp.Regexp
	thousand bool // multiply the captured number by 1000
}

// Budget patterns in priority order. The first row whose match clears the
// noise floor wins; a sub-floor match falls through to the next row.
var budgetPatterns = []budgetPattern{
	{regexp.MustCompile(`(?i)\$(\d[\d,]*(?:\.\d+)?)k`), true},
	{regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)k\s*(?:dollar|usd|budget)?`), true},
	{regexp.MustCompile(`\$(\d[\d,]*)`), false},
	{regexp.MustCompile(`(?i)(\d[\d,]{2,})\s*(?:dollar|usd|budget)`), false},
	{regexp.MustCompile(`(?i)budget\s+(?:of|is|:)?\s*\$?(\d[\d,]*)`), false},
}

// ExtractBudget scans text for a dollar budget. The second return value is
// false when no pattern yields an amount at or above the noise floor.
func ExtractBudget(text string) (int, bool) {
	for _, pattern := range budgetPatterns {
		m := pattern.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, ok := parseAmount(m[1], pattern.thousand)
		if ok && value >= minBudget {
			return value, true
		}
	}
	return 0, false
}

// parseAmount parses a captured numeral, stripping commas first.
// Thousand-suffixed amounts may carry a decimal part ("2.5k").
func parseAmount(raw string, thousand bool) (int, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	if thousand {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		return int(f*1000 + 0.5), true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
