package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and the
// JWT session token lifecycle.
type AuthService interface {
	Register(ctx context.Context, user models.User, password, confirmPassword string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes profile operations for an already authenticated user.
// The userID argument always comes from a validated session token, never from
// client-supplied request data.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// AppInfoService reports application-level metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
