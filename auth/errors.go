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


package auth

import "errors"

var (
	// ErrAccountsRequired is returned when an account repository is not provided.
	ErrAccountsRequired = errors.New("account repository required")

	// ErrMissingFields is returned when name, email, or password is empty.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPasswordTooShort is returned for passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrEmailTaken is returned when an account with the email already exists.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrNoAccount is returned when no account matches the login email.
	ErrNoAccount = errors.New("no account found with this email")

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("incorrect password")
)
