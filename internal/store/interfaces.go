package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
// Implementations must enforce email uniqueness at the storage layer:
// the service-level duplicate check is only a fast-path user-facing error.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields (UserID, CreatedAt) populated.
	// Returns ErrEmailAlreadyExists when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser rewrites the mutable profile fields (username, name, email)
	// of the record identified by user.UserID and returns the updated record.
	// Returns ErrNoUserWasFound when the record does not exist and
	// ErrEmailAlreadyExists when the new email collides with another account.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the record with the given identifier.
	// Returns ErrNoUserWasFound when there is nothing to delete.
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
