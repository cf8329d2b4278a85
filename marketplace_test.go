package talentbridge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentbridge/ai/mock"
	"github.com/poiesic/talentbridge/assist"
	"github.com/poiesic/talentbridge/booking"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMarketplace(t *testing.T) *Marketplace {
	t.Helper()

	ctx := context.Background()
	catalogPath := filepath.Join(t.TempDir(), "artists.json")

	mp, err := NewMarketplace(ctx, catalogPath, "",
		WithEmbedder(mock.NewMockEmbedder()),
		WithIndexBackend(index.BackendBrute),
	)
	require.NoError(t, err)
	t.Cleanup(func() { mp.Close() })

	_, err = mp.Catalog().Append(ctx, core.Provider{
		Name: "Luna Grace", Category: "Singer", City: "Chicago", Location: "Chicago, IL",
		Skills: []string{"jazz"}, PriceMin: 900, PriceMax: 2500, Rating: 4.9,
		EventTypes: []string{"wedding"},
	})
	require.NoError(t, err)

	return mp
}

func TestMarketplaceSearchAndPlan(t *testing.T) {
	mp := testMarketplace(t)
	ctx := context.Background()

	results, _ := mp.Searcher().Search(ctx, "a singer for a wedding", 3)
	require.NotEmpty(t, results)
	assert.Equal(t, "Luna Grace", results[0].Provider.Name)

	reply := mp.Assistant().Respond(ctx, "plan a wedding with a $20,000 budget")
	planReply, ok := reply.(assist.PlanReply)
	require.True(t, ok)
	assert.Equal(t, "wedding", planReply.EventType)
	assert.Equal(t, 20000, planReply.TotalBudget)
}

func TestMarketplaceBookingAndAuth(t *testing.T) {
	mp := testMarketplace(t)
	ctx := context.Background()

	booked, err := mp.Bookings().Book(ctx, 1, booking.Request{Price: 1500})
	require.NoError(t, err)
	assert.Equal(t, 150.0, booked.PlatformCommission)
	assert.Equal(t, 1350.0, booked.ProviderPayout)

	account, err := mp.Auth().Register(ctx, "Priya Nair", "priya@example.com", "secret123", "hirer")
	require.NoError(t, err)
	assert.NotZero(t, account.Id)

	loggedIn, err := mp.Auth().Login(ctx, "priya@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, account.Id, loggedIn.Id)
}
