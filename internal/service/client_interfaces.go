package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication and the saved session. Implementations talk to the remote
// server through the adapter and keep the session token encrypted at rest.
type ClientAuthService interface {
	// Register creates a new account on the server and, on success,
	// persists the issued session token encrypted with a key derived from
	// the account password.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates against the server and, on success, persists the
	// issued session token the same way Register does.
	Login(ctx context.Context, email, password string) error

	// RestoreSession loads the saved session record without unlocking it.
	// Returns store.ErrLocalSessionNotFound when no session is saved.
	RestoreSession() (models.SessionRecord, error)

	// Unlock derives the key from password, decrypts the saved token and
	// arms the server adapter with it. Returns ErrSessionUnlockFailed when
	// the password is wrong or the session file is corrupted.
	Unlock(ctx context.Context, password string) error

	// Logout drops the in-memory token and removes the saved session.
	Logout() error
}

// ClientUserService defines the client-side contract for profile operations.
// Every method requires a previously armed session token.
type ClientUserService interface {
	// Me fetches the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)

	// Update rewrites the profile and returns the updated record.
	Update(ctx context.Context, request models.UpdateUserRequest) (models.User, error)

	// Delete removes the account on the server and drops the saved session.
	Delete(ctx context.Context) error

	// ServerVersion reports the version string of the remote server.
	ServerVersion(ctx context.Context) (string, error)
}
