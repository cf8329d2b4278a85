package plan

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/poiesic/talentbridge/classify"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

// entertainmentFallbackShare is the budget share assigned to entertainment
// when no breakdown line mentions it.
const entertainmentFallbackShare = 0.20

const shortlistSize = 3

// Planner builds event plans from a budget and free text.
type Planner struct {
	catalog storage.CatalogRepository
	logger  *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPlanner creates a new planner.
func NewPlanner(catalog storage.CatalogRepository, opts ...Option) (*Planner, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	p := &Planner{
		catalog: catalog,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// GeneratePlan classifies the event type from rawText and eventName combined,
// allocates the budget across the type's weight template, derives the
// entertainment sub-budget, and shortlists providers under it.
func (p *Planner) GeneratePlan(ctx context.Context, eventName string, budget int, rawText string) (*core.EventPlan, error) {
	eventType := classify.DetectEventType(rawText + " " + eventName)

	template := templateFor(eventType)
	breakdown := make([]core.BudgetLine, len(template))
	for i, line := range template {
		breakdown[i] = core.BudgetLine{
			Label:  line.Label,
			Amount: int(math.Round(float64(budget) * line.Weight)),
		}
	}

	entBudget := entertainmentBudget(breakdown, budget)

	providers, err := p.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	shortlist := shortlistProviders(providers, categoriesFor(eventType), entBudget)

	p.logger.Debug("event plan generated",
		"event_type", eventType,
		"budget", budget,
		"entertainment_budget", entBudget,
		"shortlisted", len(shortlist))

	return &core.EventPlan{
		EventName:           eventName,
		EventType:           eventType,
		TotalBudget:         budget,
		Breakdown:           breakdown,
		Timeline:            timelineFor(eventType),
		Tips:                tipsFor(eventType),
		EntertainmentBudget: entBudget,
		Providers:           shortlist,
	}, nil
}

// entertainmentBudget returns the amount of the first breakdown line whose
// label mentions entertainment or artists, falling back to a fixed share of
// the total.
func entertainmentBudget(breakdown []core.BudgetLine, budget int) int {
	for _, line := range breakdown {
		label := strings.ToLower(line.Label)
		if strings.Contains(label, "entertainment") || strings.Contains(label, "artist") {
			return line.Amount
		}
	}
	return int(math.Round(float64(budget) * entertainmentFallbackShare))
}

// shortlistProviders picks up to three providers whose category is preferred
// for the event type and whose minimum price fits the entertainment budget,
// best-rated first. When fewer than two qualify, the pool widens to any
// provider meeting the price constraint.
func shortlistProviders(providers []core.Provider, preferred []string, entBudget int) []core.Provider {
	prefSet := make(map[string]bool, len(preferred))
	for _, c := range preferred {
		prefSet[c] = true
	}

	candidates := make([]core.Provider, 0, len(providers))
	for _, p := range providers {
		if p.PriceMin <= entBudget && prefSet[p.Category] {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})
	if len(candidates) > shortlistSize {
		candidates = candidates[:shortlistSize]
	}

	if len(candidates) < 2 {
		selected := make(map[core.ID]bool, len(candidates))
		for _, c := range candidates {
			selected[c.Id] = true
		}

		extras := make([]core.Provider, 0, len(providers))
		for _, p := range providers {
			if p.PriceMin <= entBudget && !selected[p.Id] {
				extras = append(extras, p)
			}
		}
		sort.SliceStable(extras, func(i, j int) bool {
			return extras[i].Rating > extras[j].Rating
		})

		candidates = append(candidates, extras...)
		if len(candidates) > shortlistSize {
			candidates = candidates[:shortlistSize]
		}
	}

	return candidates
}
