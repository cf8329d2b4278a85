package assist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/talentbridge/classify"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/plan"
	"github.com/poiesic/talentbridge/search"
)

// Fixed textual fallbacks. Every degenerate input or internal failure maps
// to one of these rather than an error.
const (
	promptEmptyMessage = "Please describe your event and budget!"
	promptEmptyQuery   = "Please enter a message."
	promptFailure      = "Something went wrong. Please try again."
)

// chatTopK is how many providers a conversational reply carries by default.
const chatTopK = 3

// Assistant routes chat messages between the planning and retrieval engines.
type Assistant struct {
	searcher *search.Searcher
	planner  *plan.Planner
	monitor  search.SearchMonitor
	topK     int
	logger   *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithSearchMonitor observes every retrieval the assistant runs.
func WithSearchMonitor(monitor search.SearchMonitor) Option {
	return func(a *Assistant) error {
		a.monitor = monitor
		return nil
	}
}

// WithTopK sets how many providers a reply carries.
// Default is 3. Values below 1 keep the default.
func WithTopK(topK int) Option {
	return func(a *Assistant) error {
		if topK >= 1 {
			a.topK = topK
		}
		return nil
	}
}

// NewAssistant creates a new assistant.
func NewAssistant(searcher *search.Searcher, planner *plan.Planner, opts ...Option) (*Assistant, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if planner == nil {
		return nil, ErrPlannerRequired
	}

	a := &Assistant{
		searcher: searcher,
		planner:  planner,
		topK:     chatTopK,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Respond handles one chat message and returns a TextReply, ArtistsReply, or
// PlanReply. It never returns an error: failures degrade to a TextReply.
func (a *Assistant) Respond(ctx context.Context, message string) any {
	message = strings.TrimSpace(message)
	if message == "" {
		return TextReply{Type: TypeText, Response: promptEmptyMessage}
	}

	budget, hasBudget := classify.ExtractBudget(message)
	if hasBudget && classify.IsPlanRequest(message) {
		eventName := classify.ExtractEventName(message)
		result, err := a.planner.GeneratePlan(ctx, eventName, budget, message)
		if err != nil {
			a.logger.Error("plan generation failed", "err", err)
			return TextReply{Type: TypeText, Response: promptFailure}
		}
		return planReply(result)
	}

	results, filters := a.searcher.SearchWithMonitor(ctx, message, a.topK, a.monitor)
	return ArtistsReply{
		Type:     TypeArtists,
		Response: buildArtistResponse(results, filters),
		Artists:  searchCards(results),
	}
}

// Search handles the bare search contract: ranked cards plus a summary,
// without a reply-type discriminator.
func (a *Assistant) Search(ctx context.Context, query string) SearchReply {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchReply{Response: promptEmptyQuery, Artists: []Card{}}
	}

	results, filters := a.searcher.SearchWithMonitor(ctx, query, a.topK, a.monitor)
	return SearchReply{
		Response: buildArtistResponse(results, filters),
		Artists:  searchCards(results),
	}
}

func planReply(result *core.EventPlan) PlanReply {
	cards := make([]Card, len(result.Providers))
	for i, p := range result.Providers {
		cards[i] = planCard(p)
	}
	return PlanReply{
		Type:                TypeEventPlan,
		EventName:           result.EventName,
		EventType:           result.EventType,
		TotalBudget:         result.TotalBudget,
		Breakdown:           result.Breakdown,
		Timeline:            result.Timeline,
		Tips:                result.Tips,
		EntertainmentBudget: result.EntertainmentBudget,
		Artists:             cards,
	}
}

func searchCards(results []core.SearchResult) []Card {
	cards := make([]Card, len(results))
	for i, r := range results {
		cards[i] = searchCard(r)
	}
	return cards
}
