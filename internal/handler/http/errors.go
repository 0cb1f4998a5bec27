// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Their messages are
// sent to clients verbatim, so they deliberately reveal nothing beyond what
// the caller already knows. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned when the incoming request carries no
	// usable bearer token: the "Authorization" header is absent, malformed,
	// or contains an empty token value.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidToken is returned when a bearer token is present but fails
	// validation (bad signature, wrong issuer, expired, malformed).
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserDoesNotExist is returned when a valid token references an
	// account that no longer exists (e.g. deleted after the token was issued).
	ErrUserDoesNotExist = errors.New("user does not exist")
)
