// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientUserService(t *testing.T, srv *fakeServerAdapter) (ClientUserService, store.SessionStore) {
	t.Helper()

	sessions, err := store.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	return NewClientUserService(srv, sessions, logger.Nop()), sessions
}

func TestClientUserService_Me(t *testing.T) {
	srv := &fakeServerAdapter{
		meFn: func(context.Context) (models.User, error) {
			return models.User{Username: "john", Email: "john@example.com"}, nil
		},
	}
	svc, _ := newTestClientUserService(t, srv)

	user, err := svc.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestClientUserService_Update(t *testing.T) {
	srv := &fakeServerAdapter{
		updateFn: func(_ context.Context, req models.UpdateUserRequest) (models.User, error) {
			return models.User{Username: req.Username, Name: req.Name, Email: req.Email}, nil
		},
	}
	svc, _ := newTestClientUserService(t, srv)

	user, err := svc.Update(context.Background(), models.UpdateUserRequest{
		Username: "bob", Name: "Bob", Email: "bob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)
}

func TestClientUserService_Delete_DropsSession(t *testing.T) {
	srv := &fakeServerAdapter{token: "signed.jwt.token"}
	svc, sessions := newTestClientUserService(t, srv)

	require.NoError(t, sessions.Save(models.SessionRecord{Email: "john@example.com", EncryptedToken: "YmxvYg=="}))

	require.NoError(t, svc.Delete(context.Background()))

	assert.Empty(t, srv.Token())
	_, err := sessions.Load()
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestClientUserService_Delete_ServerError(t *testing.T) {
	srv := &fakeServerAdapter{deleteErr: assert.AnError}
	svc, sessions := newTestClientUserService(t, srv)

	require.NoError(t, sessions.Save(models.SessionRecord{Email: "john@example.com", EncryptedToken: "YmxvYg=="}))

	require.Error(t, svc.Delete(context.Background()))

	// session survives a failed deletion
	_, err := sessions.Load()
	require.NoError(t, err)
}

func TestClientUserService_ServerVersion(t *testing.T) {
	srv := &fakeServerAdapter{
		versionFn: func(context.Context) (string, error) { return "1.2.3", nil },
	}
	svc, _ := newTestClientUserService(t, srv)

	version, err := svc.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
