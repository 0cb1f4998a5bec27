package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/tui"
	"github.com/MKhiriev/go-auth-keeper/internal/workers"
)

// App is the client application: terminal UI flows over the client service
// layer plus background workers.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI

	workersConfig config.ClientWorkers
	logger        *logger.Logger
}

// NewApp assembles the client application from its already constructed parts.
func NewApp(services *service.ClientServices, ui *tui.TUI, workersConfig config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}
	if ui == nil {
		return nil, errors.New("no terminal UI provided")
	}

	return &App{
		services:      services,
		ui:            ui,
		workersConfig: workersConfig,
		logger:        log,
	}, nil
}

// Run drives the whole client lifecycle and blocks until the user exits.
//
// A saved session is unlocked with the account password; when none exists
// (or the user declines the unlock) the login flow runs instead. After the
// profile screen exits with a logout the saved session is cleared and the
// cycle starts over.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewWorkers(
		newServerHealthWorker(ctx, a.services.UserService, a.workersConfig.HealthPollInterval, a.logger),
	).Run()

	for {
		if err := a.establishSession(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(); err != nil {
			a.logger.Warn().Err(err).Msg("logout cleanup failed")
		}
	}
}

// establishSession arms the server adapter with a live token: either by
// unlocking the saved session or by running the login flow.
func (a *App) establishSession(ctx context.Context) error {
	record, err := a.services.AuthService.RestoreSession()
	switch {
	case err == nil:
		fallbackToLogin, unlockErr := a.ui.UnlockFlow(ctx, record.Email)
		if unlockErr != nil {
			return unlockErr
		}
		if !fallbackToLogin {
			return nil
		}
	case errors.Is(err, store.ErrLocalSessionNotFound):
		// no saved session, fall through to the login flow
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}
