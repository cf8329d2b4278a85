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


// Package config defines process configuration and its loading order.
package config

import "github.com/poiesic/talentbridge/index"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath is the provider catalog JSON file.
	CatalogPath string `koanf:"catalog_path"`

	// AccountsDir is the account database directory.
	AccountsDir string `koanf:"accounts_dir"`

	// EmbeddingHost is the OpenAI-compatible embedding endpoint.
	EmbeddingHost string `koanf:"embedding_host"`

	// EmbeddingModel names the embedding model to use.
	EmbeddingModel string `koanf:"embedding_model"`

	// IndexBackend selects the similarity backend: flat, brute, or auto.
	IndexBackend string `koanf:"index_backend"`

	// TopK is how many providers chat and search replies carry.
	TopK int `koanf:"top_k"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		CatalogPath:    "data/artists.json",
		AccountsDir:    "data/accounts",
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "all-minilm",
		IndexBackend:   index.BackendAuto,
		TopK:           3,
	}
}
