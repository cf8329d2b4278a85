package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

func TestAccountBasics(t *testing.T) {
	repo, backend, err := NewMemoryAccountRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	account := &core.Account{
		Name:         "Priya Nair",
		Email:        "priya@example.com",
		PasswordHash: "deadbeef",
		Role:         core.RoleHirer,
	}

	added, err := repo.AddAccount(ctx, account)
	if err != nil {
		t.Fatalf("Failed to add account: %v", err)
	}

	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := repo.GetAccount(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get account: %v", err)
	}
	if retrieved.Email != "priya@example.com" {
		t.Fatalf("Expected 'priya@example.com', got '%s'", retrieved.Email)
	}
	if retrieved.Role != core.RoleHirer {
		t.Fatalf("Expected hirer role, got %v", retrieved.Role)
	}
}

func TestAccountFindByEmail(t *testing.T) {
	repo, backend, err := NewMemoryAccountRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = repo.AddAccount(ctx, &core.Account{
		Name:         "DJ Nova",
		Email:        "Nova@Example.com",
		PasswordHash: "cafef00d",
		Role:         core.RoleArtist,
	})
	if err != nil {
		t.Fatalf("Failed to add account: %v", err)
	}

	// Lookup is case-insensitive
	found, err := repo.FindAccountByEmail(ctx, "nova@example.COM")
	if err != nil {
		t.Fatalf("Failed to find account by email: %v", err)
	}
	if found.Name != "DJ Nova" {
		t.Fatalf("Expected 'DJ Nova', got '%s'", found.Name)
	}

	_, err = repo.FindAccountByEmail(ctx, "missing@example.com")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAccountDuplicateEmail(t *testing.T) {
	repo, backend, err := NewMemoryAccountRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = repo.AddAccount(ctx, &core.Account{
		Name:         "First",
		Email:        "dup@example.com",
		PasswordHash: "aa",
		Role:         core.RoleHirer,
	})
	if err != nil {
		t.Fatalf("Failed to add first account: %v", err)
	}

	_, err = repo.AddAccount(ctx, &core.Account{
		Name:         "Second",
		Email:        "DUP@example.com",
		PasswordHash: "bb",
		Role:         core.RoleArtist,
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestAccountValidation(t *testing.T) {
	repo, backend, err := NewMemoryAccountRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = repo.AddAccount(ctx, &core.Account{
		Name:         "",
		Email:        "noname@example.com",
		PasswordHash: "aa",
		Role:         core.RoleHirer,
	})
	if !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("Expected ErrEmptyName, got %v", err)
	}

	_, err = repo.AddAccount(ctx, &core.Account{
		Name:         "No Email",
		Email:        "",
		PasswordHash: "aa",
		Role:         core.RoleHirer,
	})
	if !errors.Is(err, core.ErrEmptyEmail) {
		t.Fatalf("Expected ErrEmptyEmail, got %v", err)
	}
}

func TestAccountGetMissing(t *testing.T) {
	repo, backend, err := NewMemoryAccountRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	_, err = repo.GetAccount(context.Background(), core.ID(9999))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
