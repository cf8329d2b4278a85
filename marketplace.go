// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package talentbridge

import (
	"context"
	"log/slog"

	"github.com/poiesic/talentbridge/ai"
	"github.com/poiesic/talentbridge/ai/openai"
	"github.com/poiesic/talentbridge/assist"
	"github.com/poiesic/talentbridge/auth"
	"github.com/poiesic/talentbridge/booking"
	"github.com/poiesic/talentbridge/index"
	"github.com/poiesic/talentbridge/plan"
	"github.com/poiesic/talentbridge/search"
	"github.com/poiesic/talentbridge/storage"
	"github.com/poiesic/talentbridge/storage/badger"
	"github.com/poiesic/talentbridge/storage/jsonfile"
)

// Marketplace bundles the catalog, account store, and the services built on
// top of them behind a single constructor and Close.
type Marketplace struct {
	catalog     storage.CatalogRepository
	backend     *badger.Backend
	accounts    storage.AccountRepository
	embedder    ai.Embedder
	vectorIndex index.VectorIndex
	searcher    *search.Searcher
	planner     *plan.Planner
	assistant   *assist.Assistant
	bookings    *booking.Service
	auth        *auth.Service
	logger      *slog.Logger
}

// MarketplaceOption configures a Marketplace.
type MarketplaceOption func(*marketplaceOptions)

type marketplaceOptions struct {
	aiConfig     *ai.Config
	indexBackend string
	embedder     ai.Embedder
	monitorFor   func(indexBackend string) search.SearchMonitor
	chatTopK     int
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) MarketplaceOption {
	return func(o *marketplaceOptions) {
		o.aiConfig = config
	}
}

// WithIndexBackend selects the similarity index backend: index.BackendFlat,
// index.BackendBrute, or index.BackendAuto.
func WithIndexBackend(backend string) MarketplaceOption {
	return func(o *marketplaceOptions) {
		o.indexBackend = backend
	}
}

// WithEmbedder injects a prebuilt embedder instead of constructing one from
// the AI configuration.
func WithEmbedder(embedder ai.Embedder) MarketplaceOption {
	return func(o *marketplaceOptions) {
		o.embedder = embedder
	}
}

// WithSearchMonitor installs a monitor over every retrieval run by the
// assistant. The factory receives the resolved index backend name, which with
// index.BackendAuto is only known after construction.
func WithSearchMonitor(factory func(indexBackend string) search.SearchMonitor) MarketplaceOption {
	return func(o *marketplaceOptions) {
		o.monitorFor = factory
	}
}

// WithChatTopK sets how many providers chat and search replies carry.
func WithChatTopK(topK int) MarketplaceOption {
	return func(o *marketplaceOptions) {
		o.chatTopK = topK
	}
}

// NewMarketplace opens the provider catalog at catalogPath and the account
// database at accountsDir, then wires the search, planning, assistant,
// booking, and auth services over them. An empty accountsDir opens an
// in-memory account database.
func NewMarketplace(ctx context.Context, catalogPath, accountsDir string, opts ...MarketplaceOption) (*Marketplace, error) {
	// Apply options
	options := &marketplaceOptions{
		aiConfig:     ai.DefaultConfig(), // Default if not provided
		indexBackend: index.BackendAuto,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open catalog
	catalog, err := jsonfile.NewCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	// Open account backend
	backend, err := badger.OpenBackend(accountsDir, accountsDir == "")
	if err != nil {
		return nil, err
	}

	// Create account repository
	accounts, err := badger.NewAccountRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create embedder with configured settings
	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			accounts.Close()
			backend.Close()
			return nil, err
		}
	}

	// Build similarity index
	vectorIndex, err := index.Select(ctx, options.indexBackend, catalog, embedder)
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(catalog, vectorIndex)
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	planner, err := plan.NewPlanner(catalog)
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	var monitor search.SearchMonitor
	if options.monitorFor != nil {
		monitor = options.monitorFor(vectorIndex.Backend())
	}

	assistant, err := assist.NewAssistant(searcher, planner,
		assist.WithSearchMonitor(monitor),
		assist.WithTopK(options.chatTopK))
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	bookings, err := booking.NewService(catalog)
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	authService, err := auth.NewService(accounts)
	if err != nil {
		accounts.Close()
		backend.Close()
		return nil, err
	}

	return &Marketplace{
		catalog:     catalog,
		backend:     backend,
		accounts:    accounts,
		embedder:    embedder,
		vectorIndex: vectorIndex,
		searcher:    searcher,
		planner:     planner,
		assistant:   assistant,
		bookings:    bookings,
		auth:        authService,
		logger:      slog.Default(),
	}, nil
}

func (m *Marketplace) Close() error {
	// Close repositories
	if err := m.accounts.Close(); err != nil {
		m.logger.Error("error closing account repository", "err", err)
		return err
	}

	// Close backend
	if err := m.backend.Close(); err != nil {
		m.logger.Error("error closing account backend", "err", err)
		return err
	}
	return nil
}

func (m *Marketplace) Catalog() storage.CatalogRepository {
	return m.catalog
}

func (m *Marketplace) Accounts() storage.AccountRepository {
	return m.accounts
}

func (m *Marketplace) Index() index.VectorIndex {
	return m.vectorIndex
}

func (m *Marketplace) Searcher() *search.Searcher {
	return m.searcher
}

func (m *Marketplace) Planner() *plan.Planner {
	return m.planner
}

func (m *Marketplace) Assistant() *assist.Assistant {
	return m.assistant
}

func (m *Marketplace) Bookings() *booking.Service {
	return m.bookings
}

func (m *Marketplace) Auth() *auth.Service {
	return m.auth
}
