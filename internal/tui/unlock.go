// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// unlockModel is the Bubble Tea model for the saved-session unlock screen.
// It shows which account the session belongs to and asks for the account
// password to decrypt the stored token.
type unlockModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	email string

	input      textinput.Model
	submitting bool
	errMsg     string

	fallbackToLogin bool
	quitByUser      bool
}

func newUnlockModel(ctx context.Context, auth service.ClientAuthService, email string) unlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return unlockModel{
		ctx:   ctx,
		auth:  auth,
		email: email,
		input: passwordInput,
	}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "esc":
			// start over with a fresh login instead of unlocking
			m.fallbackToLogin = true
			return m, tea.Quit
		case "enter":
			if m.submitting {
				return m, nil
			}

			pass := m.input.Value()
			if pass == "" {
				m.errMsg = "Пароль обязателен"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(pass)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("Найдена сохранённая сессия для ")
	b.WriteString(m.email)
	b.WriteString("\n\n")
	b.WriteString("Пароль │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Разблокировать...]\n")
	} else {
		b.WriteString("\n[Разблокировать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage("РАЗБЛОКИРОВКА", strings.TrimRight(b.String(), "\n"), "esc: войти заново │ enter: подтвердить"))
}

func (m unlockModel) cmdUnlock(pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return UnlockResult{Err: auth.Unlock(ctx, pass)}
	}
}
