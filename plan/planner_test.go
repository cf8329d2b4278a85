package plan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
	"github.com/poiesic/talentbridge/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWith(t *testing.T, providers ...core.Provider) storage.CatalogRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := jsonfile.NewCatalog(path)
	require.NoError(t, err)
	for _, p := range providers {
		_, err := repo.Append(context.Background(), p)
		require.NoError(t, err)
	}
	return repo
}

func planProvider(name, category string, priceMin int, rating float64) core.Provider {
	return core.Provider{
		Name:     name,
		Category: category,
		PriceMin: priceMin,
		PriceMax: priceMin * 3,
		Rating:   rating,
	}
}

func TestTemplateWeightsSumToOne(t *testing.T) {
	for eventType, template := range budgetTemplates {
		var sum float64
		for _, line := range template {
			sum += line.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "weights for %q must sum to 1", eventType)
	}
}

func TestEveryTableHasDefault(t *testing.T) {
	assert.Contains(t, budgetTemplates, "default")
	assert.Contains(t, eventTimelines, "default")
	assert.Contains(t, proTips, "default")
	assert.Contains(t, preferredCategories, "default")
}

func TestBreakdownRoundingDriftBounded(t *testing.T) {
	planner, err := NewPlanner(catalogWith(t))
	require.NoError(t, err)

	// An awkward budget that rounds on nearly every line
	const budget = 9999
	for eventType := range budgetTemplates {
		result, err := planner.GeneratePlan(context.Background(), "Event", budget, "planning a "+eventType)
		require.NoError(t, err)
		require.Equal(t, eventType, result.EventType)

		var sum int
		for _, line := range result.Breakdown {
			sum += line.Amount
		}
		drift := sum - budget
		if drift < 0 {
			drift = -drift
		}
		// Each line rounds by at most half a dollar
		assert.LessOrEqual(t, drift, len(result.Breakdown), "event type %q", eventType)
	}
}

func TestGeneratePlanWedding(t *testing.T) {
	planner, err := NewPlanner(catalogWith(t))
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Smith Wedding", 20000, "planning our wedding, budget $20k")
	require.NoError(t, err)

	assert.Equal(t, "wedding", result.EventType)
	assert.Equal(t, "Smith Wedding", result.EventName)
	assert.Equal(t, 20000, result.TotalBudget)
	require.Len(t, result.Breakdown, 7)
	assert.Equal(t, "💐 Venue & Decor", result.Breakdown[0].Label)
	assert.Equal(t, 6000, result.Breakdown[0].Amount)
	// Entertainment line drives the sub-budget: 20% of 20000
	assert.Equal(t, 4000, result.EntertainmentBudget)
	assert.NotEmpty(t, result.Timeline)
	assert.Len(t, result.Tips, 3)
}

func TestGeneratePlanUnknownTypeUsesDefault(t *testing.T) {
	planner, err := NewPlanner(catalogWith(t))
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Gathering", 1000, "just a casual get-together")
	require.NoError(t, err)

	assert.Equal(t, "default", result.EventType)
	require.Len(t, result.Breakdown, 6)
	assert.Equal(t, "🏛️ Venue", result.Breakdown[0].Label)
	assert.Equal(t, 300, result.Breakdown[0].Amount)
	assert.Equal(t, 200, result.EntertainmentBudget)
}

func TestGeneratePlanConcertFallsBackForTimelineAndTips(t *testing.T) {
	planner, err := NewPlanner(catalogWith(t))
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Summer Concert", 50000, "organizing a concert")
	require.NoError(t, err)

	assert.Equal(t, "concert", result.EventType)
	// Concert has no dedicated timeline or tips, only a budget template
	assert.Equal(t, eventTimelines["default"], result.Timeline)
	assert.Equal(t, proTips["default"], result.Tips)
	// "Artist Booking" is the first matching line: 40% of 50000
	assert.Equal(t, 20000, result.EntertainmentBudget)
}

func TestShortlistPrefersCategoriesAndRating(t *testing.T) {
	catalog := catalogWith(t,
		planProvider("Budget Singer", "Singer", 500, 4.2),
		planProvider("Top Singer", "Singer", 800, 4.9),
		planProvider("Pricey Singer", "Singer", 99999, 5.0),
		planProvider("Caterer", "Caterer", 100, 5.0),
		planProvider("Good DJ", "DJ", 600, 4.7),
	)
	planner, err := NewPlanner(catalog)
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Smith Wedding", 20000, "wedding for 100 guests")
	require.NoError(t, err)

	require.Len(t, result.Providers, 3)
	assert.Equal(t, "Top Singer", result.Providers[0].Name)
	assert.Equal(t, "Good DJ", result.Providers[1].Name)
	assert.Equal(t, "Budget Singer", result.Providers[2].Name)
}

func TestShortlistWidensWhenTooFewPreferred(t *testing.T) {
	catalog := catalogWith(t,
		planProvider("Lone Singer", "Singer", 500, 4.5),
		planProvider("Fire Breather", "Stunt Artist", 300, 4.8),
		planProvider("Caricaturist", "Caricature", 200, 4.1),
	)
	planner, err := NewPlanner(catalog)
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Smith Wedding", 20000, "wedding celebration")
	require.NoError(t, err)

	// Only one preferred-category match; pool widens by rating
	require.Len(t, result.Providers, 3)
	assert.Equal(t, "Lone Singer", result.Providers[0].Name)
	assert.Equal(t, "Fire Breather", result.Providers[1].Name)
	assert.Equal(t, "Caricaturist", result.Providers[2].Name)
}

func TestShortlistEmptyCatalog(t *testing.T) {
	planner, err := NewPlanner(catalogWith(t))
	require.NoError(t, err)

	result, err := planner.GeneratePlan(context.Background(), "Party", 1000, "birthday party")
	require.NoError(t, err)
	assert.Empty(t, result.Providers)
}

func TestNewPlannerValidation(t *testing.T) {
	_, err := NewPlanner(nil)
	assert.ErrorIs(t, err, ErrCatalogRequired)
}
