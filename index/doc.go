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


// Package index provides nearest-neighbor ranking of catalog providers by
// cosine similarity.
//
// Two interchangeable backends implement VectorIndex:
//   - FlatIP precomputes L2-normalized embeddings for a catalog snapshot at
//     construction time and ranks by inner product.
//   - BruteForce recomputes embeddings for the live catalog on every search.
//
// Both produce scores in the same [-1, 1] cosine space, so consumers are
// backend-agnostic.
package index
