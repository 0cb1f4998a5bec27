package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	crypto   crypto.KeyChainService
	logger   *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] over the given
// session store, server adapter and keychain.
func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		crypto:   keychain,
		logger:   logger,
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, request models.RegisterRequest) error {
	if err := a.adapter.Register(ctx, request); err != nil {
		return fmt.Errorf("register on server: %w", err)
	}

	a.persistSession(request.Email, request.Password)
	return nil
}

// Login implements [ClientAuthService].
func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	if err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("login on server: %w", err)
	}

	a.persistSession(email, password)
	return nil
}

// persistSession encrypts the token currently held by the adapter with a key
// derived from password and writes it to the session store.
//
// Failures are logged and swallowed: the server session is already live, a
// failed save only costs a fresh login after the next restart.
func (a *clientAuthService) persistSession(email, password string) {
	salt, err := a.crypto.GenerateSalt()
	if err != nil {
		a.logger.Warn().Err(err).Msg("session not saved: salt generation failed")
		return
	}

	key := a.crypto.DeriveKey(password, salt)

	encryptedToken, err := a.crypto.EncryptToken(a.adapter.Token(), key)
	if err != nil {
		a.logger.Warn().Err(err).Msg("session not saved: token encryption failed")
		return
	}

	record := models.SessionRecord{
		Email:          email,
		Salt:           base64.StdEncoding.EncodeToString(salt),
		EncryptedToken: encryptedToken,
	}

	if err := a.sessions.Save(record); err != nil {
		a.logger.Warn().Err(err).Msg("session not saved: write failed")
	}
}

// RestoreSession implements [ClientAuthService].
func (a *clientAuthService) RestoreSession() (models.SessionRecord, error) {
	return a.sessions.Load()
}

// Unlock implements [ClientAuthService].
func (a *clientAuthService) Unlock(ctx context.Context, password string) error {
	record, err := a.sessions.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return fmt.Errorf("%w: bad salt", ErrSessionUnlockFailed)
	}

	key := a.crypto.DeriveKey(password, salt)

	token, err := a.crypto.DecryptToken(record.EncryptedToken, key)
	if err != nil {
		return ErrSessionUnlockFailed
	}

	a.adapter.SetToken(token)
	return nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout() error {
	a.adapter.SetToken("")

	if err := a.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
