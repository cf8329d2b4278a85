package storage

import (
	"context"

	"github.com/poiesic/talentbridge/core"
)

// CatalogRepository provides read/append access to the provider catalog.
// The catalog is an external collection: Load returns a fresh snapshot in
// stable catalog order, and callers never cache it across operations.
type CatalogRepository interface {
	// Load returns the full catalog in stable order.
	Load(ctx context.Context) ([]core.Provider, error)

	// Save overwrite-replaces the full collection.
	Save(ctx context.Context, providers []core.Provider) error

	// Append validates the provider, allocates the next identifier
	// (max existing + 1, or 1 for an empty catalog), persists it, and
	// returns the stored record.
	Append(ctx context.Context, provider core.Provider) (core.Provider, error)

	// Get retrieves a single provider by ID.
	// Returns ErrNotFound if the provider doesn't exist.
	Get(ctx context.Context, id core.ID) (core.Provider, error)
}

// AccountRepository provides operations for managing platform accounts.
type AccountRepository interface {
	// AddAccount validates and stores a new account, allocating an ID and
	// setting CreatedAt if unset. Returns ErrDuplicateKey when an account
	// with the same email already exists.
	AddAccount(ctx context.Context, account *core.Account) (*core.Account, error)

	// UpdateAccount overwrites an existing account record by ID.
	// Returns ErrNotFound if the account doesn't exist.
	UpdateAccount(ctx context.Context, account *core.Account) error

	// GetAccount retrieves an account by ID.
	// Returns ErrNotFound if the account doesn't exist.
	GetAccount(ctx context.Context, id core.ID) (*core.Account, error)

	// FindAccountByEmail retrieves an account by email, case-insensitively.
	// Returns ErrNotFound if no account matches.
	FindAccountByEmail(ctx context.Context, email string) (*core.Account, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
