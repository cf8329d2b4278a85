package index

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentbridge/ai"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

const embedBatchSize = 32

// FlatIP is the accelerated backend: a flat inner-product index over
// L2-normalized embeddings of a catalog snapshot taken at construction.
//
// The snapshot is deliberately never refreshed. Providers appended to the
// catalog after construction are invisible to FlatIP searches until a new
// index is built; callers who need a live view use BruteForce instead.
type FlatIP struct {
	embedder  ai.Embedder
	providers []core.Provider
	matrix    [][]float32
	logger    *slog.Logger
}

var _ VectorIndex = (*FlatIP)(nil)

// FlatOption configures FlatIP construction.
type FlatOption func(*flatConfig)

type flatConfig struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the worker pool size for batch embedding during the
// index build. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) FlatOption {
	return func(c *flatConfig) {
		if size < 1 {
			size = 1
		}
		c.poolSize = size
	}
}

// WithFlatLogger sets a custom logger.
// Default is slog.Default().
func WithFlatLogger(logger *slog.Logger) FlatOption {
	return func(c *flatConfig) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewFlatIP snapshots the catalog, embeds every provider in parallel batches,
// L2-normalizes the vectors, and returns the ready index.
func NewFlatIP(ctx context.Context, catalog storage.CatalogRepository, embedder ai.Embedder, opts ...FlatOption) (*FlatIP, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	cfg := &flatConfig{
		poolSize: poolSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	providers, err := catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(providers))
	for i, p := range providers {
		texts[i] = ProviderText(p)
	}

	matrix := make([][]float32, len(texts))
	if len(texts) > 0 {
		pool, err := ants.NewPool(cfg.poolSize)
		if err != nil {
			return nil, err
		}
		defer pool.Release()

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		for start := 0; start < len(texts); start += embedBatchSize {
			end := start + embedBatchSize
			if end > len(texts) {
				end = len(texts)
			}
			start, end := start, end

			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				vecs, err := embedder.EmbedTexts(ctx, texts[start:end])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				for i, vec := range vecs {
					l2Normalize(vec)
					matrix[start+i] = vec
				}
			})
			if submitErr != nil {
				wg.Done()
				mu.Lock()
				if firstErr == nil {
					firstErr = submitErr
				}
				mu.Unlock()
				break
			}
		}
		wg.Wait()

		if firstErr != nil {
			return nil, firstErr
		}
	}

	cfg.logger.Info("flat index built", "providers", len(providers), "pool_size", cfg.poolSize)

	return &FlatIP{
		embedder:  embedder,
		providers: providers,
		matrix:    matrix,
		logger:    cfg.logger,
	}, nil
}

// Backend returns BackendFlat.
func (f *FlatIP) Backend() string {
	return BackendFlat
}

// Size returns the number of providers in the snapshot.
func (f *FlatIP) Size() int {
	return len(f.providers)
}

// Search embeds the query, L2-normalizes it, and ranks the snapshot by inner
// product (cosine similarity, since rows are unit-normalized).
func (f *FlatIP) Search(ctx context.Context, query string, k int) ([]Match, error) {
	if k <= 0 || len(f.providers) == 0 {
		return nil, nil
	}

	queryVec, err := f.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}
	l2Normalize(queryVec)

	return rank(f.providers, f.matrix, queryVec, k), nil
}

// rank scores every row against the query vector and returns the top-k by
// descending score, catalog order for ties.
func rank(providers []core.Provider, matrix [][]float32, queryVec []float32, k int) []Match {
	matches := make([]Match, len(providers))
	for i := range providers {
		matches[i] = Match{
			Provider: providers[i],
			Score:    dotProduct(matrix[i], queryVec),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}
