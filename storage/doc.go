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


// Package storage provides the storage abstraction layer for the marketplace.
//
// Two repositories exist with deliberately different backends:
//
//   - CatalogRepository: the provider catalog is an externally owned JSON
//     collection. Engines reload it on every operation and Save
//     overwrite-replaces the whole file (storage/jsonfile).
//   - AccountRepository: registered users live in BadgerDB with an email
//     index (storage/badger).
//
// Constructors return interface types so backends stay swappable and tests
// can substitute in-memory implementations.
//
// All repository implementations must be thread-safe for concurrent reads.
// Catalog writes are not synchronized against concurrent writers; the
// read-modify-write race on Append is an accepted limitation of the
// external-collection contract.
package storage
