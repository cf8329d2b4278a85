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


// Package assist is the conversational front of the marketplace. It routes
// each free-text message to either the planning engine (when the text pairs
// an event with a budget) or the retrieval engine, and shapes the result
// into one of three reply forms: an event plan, a provider list, or plain
// text. No message ever produces an error reply shape; every failure path
// has a fixed textual fallback.
package assist
