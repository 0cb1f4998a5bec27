package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// ClientServices aggregates every service the client application needs.
type ClientServices struct {
	AuthService ClientAuthService
	UserService ClientUserService
}

// NewClientServices wires the client service layer over the given session
// store and server adapter.
func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keychain := crypto.NewKeyChainService()

	return &ClientServices{
		AuthService: NewClientAuthService(sessions, serverAdapter, keychain, logger),
		UserService: NewClientUserService(serverAdapter, sessions, logger),
	}
}
