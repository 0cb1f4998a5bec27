package tui

import (
	"github.com/MKhiriev/go-auth-keeper/models"
)

// NavigateTo asks the root model to switch to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult reports the outcome of an async login command.
type LoginResult struct {
	Err   error
	Email string
}

// RegisterResult reports the outcome of an async registration command.
// Registration issues a session token, so a successful result finishes the
// authentication flow the same way a login does.
type RegisterResult struct {
	Err      error
	Username string
}

// UnlockResult reports the outcome of an async session unlock command.
type UnlockResult struct {
	Err error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileUpdatedMsg struct {
	user models.User
	err  error
}

type accountDeletedMsg struct {
	err error
}

type versionLoadedMsg struct {
	version string
	err     error
}
