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


// Package search provides hybrid retrieval over the provider catalog.
//
// The Searcher type combines:
//   - Semantic ranking using vector embeddings
//   - Structured filters mined from the same query text (budget, city,
//     category)
//
// Candidates are oversampled before filtering so that hard constraints still
// leave enough results. Filters are advisory: if they eliminate every
// candidate, the unfiltered ranking is returned instead. Any failure along
// the way degrades to a fixed-order catalog prefix, so Search never fails.
package search
