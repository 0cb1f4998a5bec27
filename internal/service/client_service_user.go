package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type clientUserService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionStore
	logger   *logger.Logger
}

// NewClientUserService constructs a [ClientUserService] over the given
// server adapter and session store.
func NewClientUserService(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		adapter:  serverAdapter,
		sessions: sessions,
		logger:   logger,
	}
}

// Me implements [ClientUserService].
func (s *clientUserService) Me(ctx context.Context) (models.User, error) {
	user, err := s.adapter.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}

	return user, nil
}

// Update implements [ClientUserService].
func (s *clientUserService) Update(ctx context.Context, request models.UpdateUserRequest) (models.User, error) {
	user, err := s.adapter.Update(ctx, request)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

// Delete implements [ClientUserService]. The saved session is dropped even
// though the server already invalidated the account: a stale session file
// would only produce a confusing unlock prompt on the next start.
func (s *clientUserService) Delete(ctx context.Context) error {
	if err := s.adapter.Delete(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if err := s.sessions.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("stale session file left behind after account deletion")
	}

	return nil
}

// ServerVersion implements [ClientUserService].
func (s *clientUserService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("get server version: %w", err)
	}

	return version, nil
}
