package server

import (
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/index"
	"github.com/poiesic/talentbridge/metrics"
	"github.com/poiesic/talentbridge/search"
)

// NewSearchMonitor returns a search monitor that feeds retrieval outcomes
// into the Prometheus collectors, labeled with the index backend name.
func NewSearchMonitor(m *metrics.Metrics, backend string) search.SearchMonitor {
	return &metricsMonitor{metrics: m, backend: backend}
}

type metricsMonitor struct {
	metrics *metrics.Metrics
	backend string
}

var _ search.SearchMonitor = (*metricsMonitor)(nil)

func (mm *metricsMonitor) Start(_ string)                               {}
func (mm *metricsMonitor) AfterFilters(_ core.FilterSet, _ int, _ bool) {}
func (mm *metricsMonitor) Finish(_ []core.SearchResult)                 {}

// Exactly one of AfterRanking or DegradedFallback fires per retrieval, so
// together they count every search once.

func (mm *metricsMonitor) AfterRanking(_ []index.Match) {
	mm.metrics.Searches.WithLabelValues(mm.backend, "false").Inc()
}

func (mm *metricsMonitor) DegradedFallback(_ error) {
	mm.metrics.Searches.WithLabelValues(mm.backend, "true").Inc()
}
