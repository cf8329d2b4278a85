package assist

import (
	"fmt"
	"math"
	"strings"

	"github.com/poiesic/talentbridge/core"
)

// Reply type discriminators.
const (
	TypeText      = "text"
	TypeArtists   = "artists"
	TypeEventPlan = "event_plan"
)

// Card is the reduced provider projection embedded in replies. Plan replies
// carry a skills preview, search replies a match-score percentage.
type Card struct {
	ID         core.ID  `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Location   string   `json:"location"`
	Rating     float64  `json:"rating"`
	PriceMin   int      `json:"price_min"`
	Badge      string   `json:"badge"`
	Avatar     string   `json:"avatar"`
	Skills     []string `json:"skills,omitempty"`
	MatchScore *int     `json:"match_score,omitempty"`
}

// TextReply is the degenerate reply shape for empty or failed requests.
type TextReply struct {
	Type     string `json:"type"`
	Response string `json:"response"`
}

// ArtistsReply carries ranked provider cards plus a formatted summary.
type ArtistsReply struct {
	Type     string `json:"type"`
	Response string `json:"response"`
	Artists  []Card `json:"artists"`
}

// PlanReply is the full event plan shape.
type PlanReply struct {
	Type                string              `json:"type"`
	EventName           string              `json:"event_name"`
	EventType           string              `json:"event_type"`
	TotalBudget         int                 `json:"total_budget"`
	Breakdown           []core.BudgetLine   `json:"breakdown"`
	Timeline            []core.TimelineStep `json:"timeline"`
	Tips                []string            `json:"tips"`
	EntertainmentBudget int                 `json:"entertainment_budget"`
	Artists             []Card              `json:"artists"`
}

// SearchReply is the bare search contract without a type discriminator.
type SearchReply struct {
	Response string `json:"response"`
	Artists  []Card `json:"artists"`
}

const skillsPreviewSize = 3

func planCard(p core.Provider) Card {
	skills := p.Skills
	if len(skills) > skillsPreviewSize {
		skills = skills[:skillsPreviewSize]
	}
	return Card{
		ID:       p.Id,
		Name:     p.Name,
		Category: p.Category,
		Location: p.Location,
		Rating:   p.Rating,
		PriceMin: p.PriceMin,
		Badge:    p.Badge,
		Avatar:   p.Avatar,
		Skills:   skills,
	}
}

func searchCard(r core.SearchResult) Card {
	score := matchPercent(r.Score)
	card := planCard(r.Provider)
	card.Skills = nil
	card.MatchScore = &score
	return card
}

// matchPercent converts a cosine score to a display percentage, capped at 99
// so no match ever claims perfection.
func matchPercent(score float32) int {
	pct := int(math.Round(float64(score) * 100))
	if pct > 99 {
		pct = 99
	}
	return pct
}

// buildArtistResponse formats the ranked matches as a markdown summary with
// an optional trailer naming the applied filters.
func buildArtistResponse(results []core.SearchResult, filters core.FilterSet) string {
	if len(results) == 0 {
		return "No artists found. Try broadening your search."
	}

	lines := []string{"Here are the best matches I found:\n"}
	for i, r := range results {
		p := r.Provider
		lines = append(lines, fmt.Sprintf(
			"**%d. %s** — %s\n   📍 %s | ⭐ %g | 💰 From $%d\n   🎯 AI Match: %d%%\n",
			i+1, p.Name, p.Category, p.Location, p.Rating, p.PriceMin, matchPercent(r.Score)))
	}

	var notes []string
	if filters.MaxBudget > 0 {
		notes = append(notes, fmt.Sprintf("budget ≤ $%d", filters.MaxBudget))
	}
	if filters.City != "" {
		notes = append(notes, "city: "+titleCase(filters.City))
	}
	if filters.Category != "" {
		notes = append(notes, "type: "+filters.Category)
	}
	if len(notes) > 0 {
		lines = append(lines, "*Filtered by: "+strings.Join(notes, ", ")+"*")
	}

	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
