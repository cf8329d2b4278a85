package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/talentbridge/classify"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/index"
	"github.com/poiesic/talentbridge/storage"
)

// degradedScore is the sentinel similarity assigned when ranking is
// unavailable and the catalog prefix is returned in storage order.
const degradedScore = 0.5

// Searcher ranks catalog providers against free-text queries and reconciles
// the ranking with structured filters mined from the same text.
type Searcher struct {
	catalog storage.CatalogRepository
	index   index.VectorIndex
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	catalog storage.CatalogRepository,
	vectorIndex index.VectorIndex,
	opts ...Option,
) (*Searcher, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if vectorIndex == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		catalog: catalog,
		index:   vectorIndex,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to topK providers ranked by similarity to the query,
// plus the filter set extracted from it. It never fails: any embedding or
// ranking error degrades to the first topK catalog entries in storage order
// with a sentinel score and an empty filter set.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]core.SearchResult, core.FilterSet) {
	return s.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor is like Search but reports intermediate steps to the
// monitor. A nil monitor disables monitoring.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor SearchMonitor) ([]core.SearchResult, core.FilterSet) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if topK <= 0 {
		topK = 6
	}

	filters := classify.ExtractFilters(query)

	// Oversample so post-filtering still leaves enough candidates
	oversampled := 3 * topK
	matches, err := s.index.Search(ctx, query, oversampled)
	if err != nil {
		s.logger.Warn("ranking failed, degrading to catalog order", "err", err)
		monitor.DegradedFallback(err)
		results := s.degraded(ctx, topK)
		monitor.Finish(results)
		return results, core.FilterSet{}
	}
	monitor.AfterRanking(matches)

	kept := applyFilters(matches, filters)
	discarded := false
	if len(kept) == 0 && len(matches) > 0 {
		// Filters are advisory: never let them empty a non-empty ranking
		kept = matches
		discarded = true
	}
	monitor.AfterFilters(filters, len(kept), discarded)

	if len(kept) > topK {
		kept = kept[:topK]
	}

	results := make([]core.SearchResult, len(kept))
	for i, m := range kept {
		results[i] = core.SearchResult{Provider: m.Provider, Score: m.Score}
	}

	monitor.Finish(results)
	return results, filters
}

// applyFilters keeps candidates satisfying every extracted constraint:
// minimum price within budget, city substring of the location, category
// equal ignoring case.
func applyFilters(matches []index.Match, filters core.FilterSet) []index.Match {
	if filters.IsEmpty() {
		return matches
	}

	kept := make([]index.Match, 0, len(matches))
	for _, m := range matches {
		if filters.MaxBudget > 0 && m.Provider.PriceMin > filters.MaxBudget {
			continue
		}
		if filters.City != "" &&
			!strings.Contains(strings.ToLower(m.Provider.Location), strings.ToLower(filters.City)) {
			continue
		}
		if filters.Category != "" &&
			!strings.EqualFold(m.Provider.Category, filters.Category) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// degraded returns the first topK catalog entries in storage order with the
// sentinel score. An unreadable catalog yields an empty result.
func (s *Searcher) degraded(ctx context.Context, topK int) []core.SearchResult {
	providers, err := s.catalog.Load(ctx)
	if err != nil {
		s.logger.Error("catalog unavailable for degraded retrieval", "err", err)
		return []core.SearchResult{}
	}

	if len(providers) > topK {
		providers = providers[:topK]
	}
	results := make([]core.SearchResult, len(providers))
	for i, p := range providers {
		results[i] = core.SearchResult{Provider: p, Score: degradedScore}
	}
	return results
}
