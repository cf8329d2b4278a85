package search

import (
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/index"
)

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterRanking(matches []index.Match)
	AfterFilters(filters core.FilterSet, kept int, discarded bool)
	DegradedFallback(err error)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) AfterRanking(_ []index.Match)                   {}
func (n *noopMonitor) AfterFilters(_ core.FilterSet, _ int, _ bool)   {}
func (n *noopMonitor) DegradedFallback(_ error)                       {}
func (n *noopMonitor) Finish(_ []core.SearchResult)                   {}
