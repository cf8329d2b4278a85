package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/talentbridge/core"
)

// filterBudgetRe is looser than the budget decision table: one pattern with an
// optional thousands suffix, still gated by the noise floor after expansion.
var filterBudgetRe = regexp.MustCompile(`\$(\d[\d,]*)([kK])?`)

// knownCities is the city gazetteer, checked in listed order. Matching is
// plain substring containment: no partial or fuzzy matching.
var knownCities = []string{
	"new york", "chicago", "los angeles", "houston", "miami",
	"atlanta", "dallas", "seattle", "boston", "nashville",
	"las vegas", "detroit", "new orleans", "san francisco",
}

// knownCategories are the singular category nouns recognized in queries.
var knownCategories = []string{
	"singer", "dancer", "musician", "painter", "photographer", "dj", "performer",
}

// ExtractFilters mines a query for structured constraints: a budget ceiling, a
// city, and a provider category. Each constraint is extracted independently;
// missing ones stay at their zero values.
func ExtractFilters(text string) core.FilterSet {
	var filters core.FilterSet

	if m := filterBudgetRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if value, err := strconv.Atoi(raw); err == nil {
			if m[2] != "" {
				value *= 1000
			}
			if value >= minBudget {
				filters.MaxBudget = value
			}
		}
	}

	t := strings.ToLower(text)
	for _, city := range knownCities {
		if strings.Contains(t, city) {
			filters.City = city
			break
		}
	}

	for _, category := range knownCategories {
		if strings.Contains(t, category) {
			filters.Category = capitalize(category)
			break
		}
	}

	return filters
}

// capitalize upper-cases the first byte of an ASCII keyword ("dj" -> "Dj").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
