package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"dollar with commas", "$2,500 budget", 2500, true},
		{"decimal k suffix", "2.5k for the event", 2500, true},
		{"dollar k suffix", "we have $3k to spend", 3000, true},
		{"below noise floor", "$50", 0, false},
		{"budget of phrasing", "budget of 1200", 1200, true},
		{"budget is phrasing", "my budget is $4,000", 4000, true},
		{"bare number with usd", "5000 usd for everything", 5000, true},
		{"k with budget word", "10k budget", 10000, true},
		{"no amount at all", "find me a jazz singer", 0, false},
		{"skill level noise", "rated $5 on the app", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBudget(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectEventType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"wedding beats corporate and party", "planning our corporate wedding party", "wedding"},
		{"corporate beats party", "corporate party for the launch", "corporate"},
		{"birthday", "my son's bday bash", "birthday"},
		{"festival", "summer music festival", "festival"},
		{"gala via charity", "charity dinner downtown", "gala"},
		{"concert via live show", "a live show next month", "concert"},
		{"party", "house party this weekend", "party"},
		{"case insensitive", "My WEDDING in June", "wedding"},
		{"no match", "team offsite retreat", "default"},
		{"empty", "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEventType(tt.text))
		})
	}
}

func TestEventTypes(t *testing.T) {
	types := EventTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, "wedding", types[0])
	assert.NotContains(t, types, DefaultEventType)
}

func TestExtractFilters(t *testing.T) {
	t.Run("budget city and category", func(t *testing.T) {
		filters := ExtractFilters("I need a jazz singer in Chicago under $2k")
		assert.Equal(t, 2000, filters.MaxBudget)
		assert.Equal(t, "chicago", filters.City)
		assert.Equal(t, "Singer", filters.Category)
	})

	t.Run("first city in gazetteer order wins", func(t *testing.T) {
		filters := ExtractFilters("miami or new york, either works")
		assert.Equal(t, "new york", filters.City)
	})

	t.Run("first category wins", func(t *testing.T) {
		filters := ExtractFilters("a dancer or maybe a dj")
		assert.Equal(t, "Dancer", filters.Category)
	})

	t.Run("dj capitalized", func(t *testing.T) {
		filters := ExtractFilters("looking for a dj in dallas")
		assert.Equal(t, "Dj", filters.Category)
		assert.Equal(t, "dallas", filters.City)
	})

	t.Run("sub-floor amount ignored", func(t *testing.T) {
		filters := ExtractFilters("a painter for $50")
		assert.Zero(t, filters.MaxBudget)
		assert.Equal(t, "Painter", filters.Category)
	})

	t.Run("nothing extracted", func(t *testing.T) {
		assert.True(t, ExtractFilters("someone fun for the evening").IsEmpty())
	})
}

func TestIsPlanRequest(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plan keyword plus event keyword", "help me plan a wedding with $5000", true},
		{"event keyword plus budget", "wedding with $5000", true},
		{"search query", "find me a singer", false},
		{"plan keyword without event", "help me with the schedule", false},
		{"event without plan or budget", "wedding singers near me", false},
		{"timeline counts as planning", "timeline for my birthday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlanRequest(tt.text))
		})
	}
}

func TestExtractEventName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"for a phrase", "I need help for a beach wedding with $10k", "Beach Wedding"},
		{"planning phrase", "planning my garden party with 2k", "Garden Party"},
		{"help me plan phrase", "help me plan a retirement gala budget 8000", "Retirement Gala"},
		{"organizing phrase", "organizing our annual conference with $20k", "Annual Conference"},
		{"keyword fallback", "something nice, it's a wedding", "Wedding"},
		{"birthday label", "birthday coming up", "Birthday Party"},
		{"generic fallback", "big day soon", "Your Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEventName(tt.text))
		})
	}
}
