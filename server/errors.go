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


package server

import "errors"

var (
	// ErrAssistantRequired is returned when an assistant is not provided.
	ErrAssistantRequired = errors.New("assistant required")

	// ErrCatalogRequired is returned when a catalog repository is not provided.
	ErrCatalogRequired = errors.New("catalog repository required")

	// ErrBookingServiceRequired is returned when a booking service is not provided.
	ErrBookingServiceRequired = errors.New("booking service required")

	// ErrAuthServiceRequired is returned when an auth service is not provided.
	ErrAuthServiceRequired = errors.New("auth service required")
)
