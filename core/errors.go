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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProvider indicates a Provider failed validation.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrInvalidAccount indicates an Account failed validation.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyCategory indicates the provider Category field is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrEmptyEmail indicates the account Email field is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrNegativePrice indicates a negative price bound.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrRatingOutOfRange indicates a rating outside [0, 5].
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")

	// ErrInvalidRole indicates an invalid Role value.
	ErrInvalidRole = errors.New("invalid role")
)
