package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

// Catalog implements storage.CatalogRepository over a single JSON file.
//
// The file is the source of truth and may be edited or replaced out of band;
// every Load re-reads it from disk. Save rewrites the whole collection. A
// process-local mutex serializes Append's read-modify-write, but nothing
// guards against concurrent writers in other processes.
type Catalog struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCatalog creates a catalog repository backed by the JSON file at path.
// A missing file is created holding an empty collection.
func NewCatalog(path string, opts ...Option) (storage.CatalogRepository, error) {
	c := &Catalog{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeProviders(path, []core.Provider{}); err != nil {
			return nil, fmt.Errorf("initializing catalog file: %w", err)
		}
		c.logger.Info("created empty catalog file", "path", path)
	} else if err != nil {
		return nil, err
	}

	return c, nil
}

// Load returns the full catalog in file order.
func (c *Catalog) Load(ctx context.Context) ([]core.Provider, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var providers []core.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	return providers, nil
}

// Save overwrite-replaces the full collection.
func (c *Catalog) Save(ctx context.Context, providers []core.Provider) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return writeProviders(c.path, providers)
}

// Append validates the provider, allocates max existing id + 1 (1 when the
// catalog is empty), persists the grown collection, and returns the record.
func (c *Catalog) Append(ctx context.Context, provider core.Provider) (core.Provider, error) {
	if err := core.ValidateProvider(&provider); err != nil {
		return core.Provider{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	providers, err := c.Load(ctx)
	if err != nil {
		return core.Provider{}, err
	}

	var maxID core.ID
	for _, p := range providers {
		if p.Id > maxID {
			maxID = p.Id
		}
	}
	provider.Id = maxID + 1

	providers = append(providers, provider)
	if err := writeProviders(c.path, providers); err != nil {
		return core.Provider{}, err
	}

	c.logger.Info("provider appended to catalog", "id", provider.Id, "name", provider.Name)
	return provider, nil
}

// Get retrieves a single provider by ID.
func (c *Catalog) Get(ctx context.Context, id core.ID) (core.Provider, error) {
	providers, err := c.Load(ctx)
	if err != nil {
		return core.Provider{}, err
	}
	for _, p := range providers {
		if p.Id == id {
			return p, nil
		}
	}
	return core.Provider{}, fmt.Errorf("%w: provider %d", storage.ErrNotFound, id)
}

func writeProviders(path string, providers []core.Provider) error {
	data, err := json.MarshalIndent(providers, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}
