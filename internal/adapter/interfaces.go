// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-auth-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples client code
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-auth-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// UserID returns the account identifier encoded in the stored bearer
	// token. The token signature is not verified client-side; the value is
	// informational only. Returns an error if no token is stored or its
	// subject claim cannot be parsed.
	UserID() (int64, error)

	// Register creates a new account on the server. On success the returned
	// bearer token is stored via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates an existing user. On success the returned bearer
	// token is stored via SetToken. Returns [ErrUnauthorized] (wrapped) when
	// the server rejects the credentials.
	Login(ctx context.Context, req models.LoginRequest) error

	// Me fetches the profile of the authenticated user. Requires a valid
	// bearer token to be set.
	Me(ctx context.Context) (models.User, error)

	// Update rewrites the profile of the authenticated user and returns the
	// updated record. All fields of req must be populated. Requires a valid
	// bearer token.
	Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error)

	// Delete removes the account of the authenticated user and clears the
	// stored token on success. Requires a valid bearer token.
	Delete(ctx context.Context) error

	// ServerVersion fetches the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
