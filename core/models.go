package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Catalog and account IDs are sequential (max existing + 1); content-derived
// IDs use BLAKE2b hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Role identifies what an account is used for on the platform.
type Role int

const (
	// RoleHirer represents an account that books providers.
	RoleHirer Role = iota + 1
	// RoleArtist represents an account that offers services.
	RoleArtist
)

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleArtist:
		return "artist"
	default:
		return "hirer"
	}
}

// ParseRole maps a wire string to a Role. Unknown values default to RoleHirer.
func ParseRole(s string) Role {
	if s == "artist" {
		return RoleArtist
	}
	return RoleHirer
}

// Provider is a service-provider profile in the catalog.
// Providers are immutable during retrieval and planning; mutation happens only
// by appending a new record through the catalog repository.
type Provider struct {
	Id            ID       `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	City          string   `json:"city"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	PriceMin      int      `json:"price_min"`
	PriceMax      int      `json:"price_max"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	EventTypes    []string `json:"event_types"`
	Bio           string   `json:"bio"`
	Badge         string   `json:"badge"`
	Avatar        string   `json:"avatar"`
	Availability  string   `json:"availability,omitempty"`
	PortfolioLink string   `json:"portfolio_link,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
}

// Account is a registered platform user.
type Account struct {
	Id           ID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Avatar       string
	CreatedAt    time.Time
}

// FilterSet holds structured constraints mined from free text.
// Zero values mean "unconstrained": extracted budgets are always >= 100, and
// city/category are non-empty when present.
type FilterSet struct {
	MaxBudget int
	City      string
	Category  string
}

// IsEmpty reports whether no constraint was extracted.
func (f FilterSet) IsEmpty() bool {
	return f.MaxBudget == 0 && f.City == "" && f.Category == ""
}

// SearchResult pairs a catalog provider with its similarity score.
// Scores live in cosine space; the degraded retrieval path uses 0.5.
type SearchResult struct {
	Provider Provider
	Score    float32
}

// BudgetLine is one allocation of an event plan's budget breakdown.
// Breakdown order follows the budget template's insertion order.
type BudgetLine struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// TimelineStep is one phase of an event preparation timeline.
type TimelineStep struct {
	Phase  string `json:"phase"`
	Action string `json:"action"`
}

// EventPlan is the full output of the planning engine.
type EventPlan struct {
	EventName           string         `json:"event_name"`
	EventType           string         `json:"event_type"`
	TotalBudget         int            `json:"total_budget"`
	Breakdown           []BudgetLine   `json:"breakdown"`
	Timeline            []TimelineStep `json:"timeline"`
	Tips                []string       `json:"tips"`
	EntertainmentBudget int            `json:"entertainment_budget"`
	Providers           []Provider     `json:"artists"`
}

// Booking is a computed, non-persisted booking acknowledgment.
type Booking struct {
	BookingID          string  `json:"booking_id"`
	ProviderName       string  `json:"artist_name"`
	EventDate          string  `json:"event_date"`
	EventType          string  `json:"event_type"`
	AgreedPrice        float64 `json:"agreed_price"`
	PlatformCommission float64 `json:"platform_commission"`
	ProviderPayout     float64 `json:"artist_payout"`
	Status             string  `json:"status"`
}
