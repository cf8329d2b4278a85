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

import "fmt"

// ValidateProvider validates a Provider according to domain rules.
//
// Validation rules:
//   - Name and Category must not be empty
//   - PriceMin and PriceMax must be non-negative
//   - Rating must be within [0, 5]
//
// NOT validated:
//   - PriceMin <= PriceMax (min <= max is a catalog convention, not enforced)
//   - ID (0 is valid before the repository allocates one)
func ValidateProvider(provider *Provider) error {
	if provider == nil {
		return fmt.Errorf("%w: provider is nil", ErrInvalidProvider)
	}

	if provider.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProvider, ErrEmptyName)
	}

	if provider.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProvider, ErrEmptyCategory)
	}

	if provider.PriceMin < 0 || provider.PriceMax < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProvider, ErrNegativePrice)
	}

	if provider.Rating < 0 || provider.Rating > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidProvider, ErrRatingOutOfRange)
	}

	return nil
}

// ValidateAccount validates an Account according to domain rules.
//
// Validation rules:
//   - Name and Email must not be empty
//   - PasswordHash must not be empty
//   - Role must be valid
//
// NOT validated:
//   - ID (0 is valid before the repository allocates one)
func ValidateAccount(account *Account) error {
	if account == nil {
		return fmt.Errorf("%w: account is nil", ErrInvalidAccount)
	}

	if account.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrEmptyName)
	}

	if account.Email == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrEmptyEmail)
	}

	if account.PasswordHash == "" {
		return fmt.Errorf("%w: password hash cannot be empty", ErrInvalidAccount)
	}

	if err := ValidateRole(account.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	return nil
}

// ValidateRole validates that a Role has a valid value.
func ValidateRole(role Role) error {
	if role != RoleHirer && role != RoleArtist {
		return fmt.Errorf("%w: value %d", ErrInvalidRole, role)
	}
	return nil
}
