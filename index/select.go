package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/talentbridge/ai"
	"github.com/poiesic/talentbridge/storage"
)

// Select constructs the index backend named by backend: BackendFlat,
// BackendBrute, or BackendAuto. Auto tries the flat index first and falls
// back to brute force when the build fails, logging the reason.
func Select(ctx context.Context, backend string, catalog storage.CatalogRepository, embedder ai.Embedder, opts ...FlatOption) (VectorIndex, error) {
	switch backend {
	case BackendFlat:
		idx, err := NewFlatIP(ctx, catalog, embedder, opts...)
		if err != nil {
			return nil, err
		}
		return idx, nil
	case BackendBrute:
		idx, err := NewBruteForce(catalog, embedder)
		if err != nil {
			return nil, err
		}
		return idx, nil
	case BackendAuto, "":
		idx, err := NewFlatIP(ctx, catalog, embedder, opts...)
		if err != nil {
			slog.Warn("flat index unavailable, brute-force fallback active", "err", err)
			brute, bruteErr := NewBruteForce(catalog, embedder)
			if bruteErr != nil {
				return nil, bruteErr
			}
			return brute, nil
		}
		return idx, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
