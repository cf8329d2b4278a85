package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

// AccountRepository implements storage.AccountRepository for BadgerDB.
type AccountRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(backend *Backend) (*AccountRepository, error) {
	idSeq, err := backend.GetSequence(accountIDSeq)
	if err != nil {
		return nil, err
	}

	return &AccountRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AccountRepository) Close() error {
	return r.idSeq.Release()
}

// AddAccount validates and stores a new account.
// The email index enforces one account per email, case-insensitively.
func (r *AccountRepository) AddAccount(ctx context.Context, account *core.Account) (*core.Account, error) {
	if err := core.ValidateAccount(account); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		emailKey := makeAccountEmailKey(account.Email)
		if _, err := tx.Get(emailKey); err == nil {
			return storage.ErrDuplicateKey
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences start at 0; account IDs start at 1
		account.Id = core.ID(nextID + 1)

		if account.CreatedAt.IsZero() {
			account.CreatedAt = time.Now().UTC()
		}

		value := storage.MarshalAccount(account)
		if err := tx.Set(makeAccountKey(account.Id), value); err != nil {
			return err
		}
		if err := tx.Set(emailKey, storage.MarshalID(account.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateAccount overwrites an existing account record. The email index is
// left untouched: emails are immutable once registered.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account *core.Account) error {
	if err := core.ValidateAccount(account); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAccountKey(account.Id)
		if _, err := tx.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		} else if err != nil {
			return err
		}
		if err := tx.Set(key, storage.MarshalAccount(account)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetAccount retrieves an account by ID.
func (r *AccountRepository) GetAccount(ctx context.Context, id core.ID) (*core.Account, error) {
	var account *core.Account

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAccountKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			account, err = storage.UnmarshalAccount(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// FindAccountByEmail retrieves an account by email via the email index.
func (r *AccountRepository) FindAccountByEmail(ctx context.Context, email string) (*core.Account, error) {
	var id core.ID

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAccountEmailKey(email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return r.GetAccount(ctx, id)
}
