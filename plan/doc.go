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


// Package plan turns a budget-plus-event-type request into a structured
// event plan: a cost breakdown from per-type weight templates, a preparation
// timeline, tips, and a provider shortlist selected under the derived
// entertainment sub-budget.
//
// Every lookup table has a "default" entry, so an unrecognized event type
// always resolves to a usable plan rather than an error.
package plan
