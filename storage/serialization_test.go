package storage

import (
	"testing"
	"time"

	"github.com/poiesic/talentbridge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalAccount(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name    string
		account *core.Account
	}{
		{
			name: "hirer account",
			account: &core.Account{
				Id:           core.ID(1),
				Name:         "Priya Nair",
				Email:        "priya@example.com",
				PasswordHash: "deadbeef",
				Role:         core.RoleHirer,
				Avatar:       "https://i.pravatar.cc/150?img=51",
				CreatedAt:    now,
			},
		},
		{
			name: "artist account",
			account: &core.Account{
				Id:           core.ID(77),
				Name:         "DJ Nova",
				Email:        "nova@example.com",
				PasswordHash: "cafef00d",
				Role:         core.RoleArtist,
				Avatar:       "https://i.pravatar.cc/150?img=127",
				CreatedAt:    now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalAccount(tt.account)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalAccount(data)
			require.NoError(t, err)
			assert.Equal(t, tt.account.Id, decoded.Id)
			assert.Equal(t, tt.account.Name, decoded.Name)
			assert.Equal(t, tt.account.Email, decoded.Email)
			assert.Equal(t, tt.account.PasswordHash, decoded.PasswordHash)
			assert.Equal(t, tt.account.Role, decoded.Role)
			assert.Equal(t, tt.account.Avatar, decoded.Avatar)
			assert.True(t, tt.account.CreatedAt.Equal(decoded.CreatedAt))
		})
	}
}

func TestUnmarshalAccount_Invalid(t *testing.T) {
	_, err := UnmarshalAccount([]byte{0x01})
	assert.Error(t, err)
}
