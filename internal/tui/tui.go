// Package tui implements the interactive terminal interface of the client:
// the authentication flow (login, registration, session unlock) and the
// profile screen with edit and delete operations.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the application with ctrl+c
// instead of completing a flow.
var ErrUserQuit = errors.New("вышел из программы")

// TUI owns every interactive flow of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

// New constructs a [TUI] over the client service layer.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}

	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu / login / registration screens until the user is
// authenticated. On return the server adapter holds a live session token.
// Returns [ErrUserQuit] when the user exits instead of logging in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// UnlockFlow runs the saved-session unlock screen for the account identified
// by email. Returns fallbackToLogin=true when the user chooses to log in
// from scratch instead, and [ErrUserQuit] when they exit.
func (t *TUI) UnlockFlow(ctx context.Context, email string) (fallbackToLogin bool, err error) {
	model := newUnlockModel(ctx, t.services.AuthService, email)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.fallbackToLogin, nil
}

// MainLoop runs the profile screen until the user logs out, deletes the
// account, or quits. Returns logout=true when the caller should clear the
// session and restart the authentication flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, nil
}
