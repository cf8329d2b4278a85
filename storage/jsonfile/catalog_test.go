package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(name string) core.Provider {
	return core.Provider{
		Name:       name,
		Category:   "DJ",
		City:       "Austin",
		Location:   "Austin, TX",
		Skills:     []string{"house", "techno"},
		PriceMin:   500,
		PriceMax:   1500,
		Rating:     4.7,
		EventTypes: []string{"wedding", "party"},
	}
}

func TestNewCatalog_CreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalog(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	providers, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestCatalogAppendAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := NewCatalog(path)
	require.NoError(t, err)

	ctx := context.Background()

	first, err := repo.Append(ctx, testProvider("DJ Nova"))
	require.NoError(t, err)
	assert.Equal(t, core.ID(1), first.Id)

	second, err := repo.Append(ctx, testProvider("The Velvet Strings"))
	require.NoError(t, err)
	assert.Equal(t, core.ID(2), second.Id)

	// IDs continue from the max, not from the count
	providers, err := repo.Load(ctx)
	require.NoError(t, err)
	providers[0].Id = 10
	require.NoError(t, repo.Save(ctx, providers))

	third, err := repo.Append(ctx, testProvider("Luna Grace"))
	require.NoError(t, err)
	assert.Equal(t, core.ID(11), third.Id)
}

func TestCatalogAppendValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := NewCatalog(path)
	require.NoError(t, err)

	invalid := testProvider("")
	_, err = repo.Append(context.Background(), invalid)
	assert.ErrorIs(t, err, core.ErrEmptyName)

	invalid = testProvider("Bad Rating")
	invalid.Rating = 7.5
	_, err = repo.Append(context.Background(), invalid)
	assert.ErrorIs(t, err, core.ErrRatingOutOfRange)
}

func TestCatalogGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := NewCatalog(path)
	require.NoError(t, err)

	ctx := context.Background()
	added, err := repo.Append(ctx, testProvider("DJ Nova"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, "DJ Nova", got.Name)

	_, err = repo.Get(ctx, core.ID(999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogLoadRereadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := NewCatalog(path)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Append(ctx, testProvider("DJ Nova"))
	require.NoError(t, err)

	// Out-of-band edit is visible on the next Load
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 42, "name": "Edited", "category": "Band", "city": "Denver", "location": "Denver, CO", "skills": [], "price_min": 100, "price_max": 200, "rating": 4.0, "reviews": 0, "event_types": [], "bio": ""}]`), 0644))

	providers, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, core.ID(42), providers[0].Id)
	assert.Equal(t, "Edited", providers[0].Name)
}

func TestCatalogLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	repo, err := NewCatalog(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrSerializationFailed)
}
