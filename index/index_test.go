package index

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentbridge/ai/mock"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
	"github.com/poiesic/talentbridge/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, providers ...core.Provider) storage.CatalogRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := jsonfile.NewCatalog(path)
	require.NoError(t, err)
	for _, p := range providers {
		_, err := repo.Append(context.Background(), p)
		require.NoError(t, err)
	}
	return repo
}

func provider(name, category string) core.Provider {
	return core.Provider{
		Name:       name,
		Category:   category,
		City:       "Austin",
		Location:   "Austin, TX",
		Skills:     []string{"live sets"},
		PriceMin:   500,
		PriceMax:   1500,
		Rating:     4.5,
		EventTypes: []string{"wedding", "party"},
	}
}

func TestProviderText(t *testing.T) {
	p := core.Provider{
		Name:       "DJ Nova",
		Category:   "DJ",
		Location:   "Austin, TX",
		Skills:     []string{"house", "techno"},
		PriceMin:   500,
		PriceMax:   1500,
		Rating:     4.7,
		EventTypes: []string{"wedding", "party"},
		Bio:        "High-energy sets.",
	}
	got := ProviderText(p)
	want := "DJ Nova is a DJ in Austin, TX. Skills: house, techno. Price: $500 to $1500. Rating: 4.7. Available for: wedding, party. High-energy sets."
	assert.Equal(t, want, got)
}

func TestFlatAndBruteAgree(t *testing.T) {
	catalog := testCatalog(t,
		provider("DJ Nova", "DJ"),
		provider("The Velvet Strings", "Band"),
		provider("Luna Grace", "Singer"),
		provider("Marco the Magician", "Magician"),
	)
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	flat, err := NewFlatIP(ctx, catalog, embedder)
	require.NoError(t, err)
	brute, err := NewBruteForce(catalog, embedder)
	require.NoError(t, err)

	flatMatches, err := flat.Search(ctx, "a singer for our wedding", 3)
	require.NoError(t, err)
	bruteMatches, err := brute.Search(ctx, "a singer for our wedding", 3)
	require.NoError(t, err)

	require.Len(t, flatMatches, 3)
	require.Len(t, bruteMatches, 3)
	for i := range flatMatches {
		assert.Equal(t, flatMatches[i].Provider.Id, bruteMatches[i].Provider.Id)
		assert.InDelta(t, flatMatches[i].Score, bruteMatches[i].Score, 1e-5)
	}
}

func TestFlatSnapshotIsStale(t *testing.T) {
	catalog := testCatalog(t, provider("DJ Nova", "DJ"))
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	flat, err := NewFlatIP(ctx, catalog, embedder)
	require.NoError(t, err)
	brute, err := NewBruteForce(catalog, embedder)
	require.NoError(t, err)

	_, err = catalog.Append(ctx, provider("Late Arrival", "Band"))
	require.NoError(t, err)

	flatMatches, err := flat.Search(ctx, "any act", 10)
	require.NoError(t, err)
	assert.Len(t, flatMatches, 1)

	bruteMatches, err := brute.Search(ctx, "any act", 10)
	require.NoError(t, err)
	assert.Len(t, bruteMatches, 2)
}

func TestFlatEmptyCatalog(t *testing.T) {
	catalog := testCatalog(t)
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	flat, err := NewFlatIP(ctx, catalog, embedder)
	require.NoError(t, err)
	assert.Equal(t, 0, flat.Size())

	matches, err := flat.Search(ctx, "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchKBounds(t *testing.T) {
	catalog := testCatalog(t,
		provider("DJ Nova", "DJ"),
		provider("Luna Grace", "Singer"),
	)
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	flat, err := NewFlatIP(ctx, catalog, embedder)
	require.NoError(t, err)

	matches, err := flat.Search(ctx, "music", 10)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = flat.Search(ctx, "music", 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSelectBackends(t *testing.T) {
	catalog := testCatalog(t, provider("DJ Nova", "DJ"))
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	idx, err := Select(ctx, BackendFlat, catalog, embedder)
	require.NoError(t, err)
	assert.Equal(t, BackendFlat, idx.Backend())

	idx, err = Select(ctx, BackendBrute, catalog, embedder)
	require.NoError(t, err)
	assert.Equal(t, BackendBrute, idx.Backend())

	_, err = Select(ctx, "hnsw", catalog, embedder)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSelectAutoFallsBack(t *testing.T) {
	catalog := testCatalog(t, provider("DJ Nova", "DJ"))
	embedder := mock.NewMockEmbedder()
	// Batch embedding fails during the flat build, single-text still works
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model not loaded")
	}

	idx, err := Select(context.Background(), BackendAuto, catalog, embedder)
	require.NoError(t, err)
	assert.Equal(t, BackendBrute, idx.Backend())
}

func TestMissingDependencies(t *testing.T) {
	catalog := testCatalog(t)
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	_, err := NewFlatIP(ctx, nil, embedder)
	assert.ErrorIs(t, err, ErrCatalogRequired)

	_, err = NewFlatIP(ctx, catalog, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewBruteForce(nil, embedder)
	assert.ErrorIs(t, err, ErrCatalogRequired)

	_, err = NewBruteForce(catalog, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}
