package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

const minPasswordLength = 6

// avatarIDOffset keeps generated account avatars out of the range used for
// seeded provider profiles.
const avatarIDOffset = 50

// Service manages platform accounts.
type Service struct {
	accounts storage.AccountRepository
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new auth service.
func NewService(accounts storage.AccountRepository, opts ...Option) (*Service, error) {
	if accounts == nil {
		return nil, ErrAccountsRequired
	}

	s := &Service{
		accounts: accounts,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Register creates a new account. Name and email are trimmed; the avatar is
// derived from the allocated account ID.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (*core.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	account := &core.Account{
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(password),
		Role:         core.ParseRole(role),
	}

	added, err := s.accounts.AddAccount(ctx, account)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	added.Avatar = AvatarURL(added.Id)
	if err := s.accounts.UpdateAccount(ctx, added); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "id", added.Id, "role", added.Role.String())
	return added, nil
}

// Login checks credentials and returns the matching account.
func (s *Service) Login(ctx context.Context, email, password string) (*core.Account, error) {
	account, err := s.accounts.FindAccountByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}

	if account.PasswordHash != HashPassword(password) {
		return nil, ErrWrongPassword
	}
	return account, nil
}

// HashPassword returns the hex BLAKE2b digest of the password.
func HashPassword(password string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// AvatarURL derives a stable placeholder avatar for an account.
func AvatarURL(id core.ID) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", uint64(id)+avatarIDOffset)
}
