package index

import (
	"context"

	"github.com/poiesic/talentbridge/core"
)

// Backend names accepted by Select.
const (
	BackendFlat  = "flat"
	BackendBrute = "brute"
	BackendAuto  = "auto"
)

// Match pairs a catalog provider with its cosine similarity score.
type Match struct {
	Provider core.Provider
	Score    float32
}

// VectorIndex ranks catalog providers by semantic similarity to a query.
// Results are ordered by descending score; ties keep catalog order.
type VectorIndex interface {
	// Search returns the top-k providers most similar to the query text.
	// Fewer than k matches are returned when the catalog is smaller than k.
	Search(ctx context.Context, query string, k int) ([]Match, error)

	// Backend returns the backend name, BackendFlat or BackendBrute.
	Backend() string
}
