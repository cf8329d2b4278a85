package index

import (
	"context"
	"log/slog"

	"github.com/poiesic/talentbridge/ai"
	"github.com/poiesic/talentbridge/storage"
)

// BruteForce is the fallback backend: no precomputed state, every search
// reloads the catalog and recomputes all embeddings. Always reflects the
// live catalog at the cost of one batch-embedding call per search.
type BruteForce struct {
	catalog  storage.CatalogRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ VectorIndex = (*BruteForce)(nil)

// NewBruteForce creates the fallback index.
func NewBruteForce(catalog storage.CatalogRepository, embedder ai.Embedder) (*BruteForce, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	return &BruteForce{
		catalog:  catalog,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

// Backend returns BackendBrute.
func (b *BruteForce) Backend() string {
	return BackendBrute
}

// Search reloads the catalog, embeds every provider and the query,
// L2-normalizes everything, and ranks by dot product.
func (b *BruteForce) Search(ctx context.Context, query string, k int) ([]Match, error) {
	if k <= 0 {
		return nil, nil
	}

	providers, err := b.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, nil
	}

	texts := make([]string, len(providers))
	for i, p := range providers {
		texts[i] = ProviderText(p)
	}

	matrix, err := b.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	for _, vec := range matrix {
		l2Normalize(vec)
	}

	queryVec, err := b.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}
	l2Normalize(queryVec)

	return rank(providers, matrix, queryVec, k), nil
}
