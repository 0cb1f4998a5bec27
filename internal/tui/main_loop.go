package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type profileScreen int

const (
	screenProfile profileScreen = iota
	screenEdit
	screenConfirmDelete
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  profileScreen
	user    models.User
	loading bool
	status  string
	errMsg  string

	serverVersion string

	editInputs     []textinput.Model
	editFocus      int
	editSubmitting bool

	deleting bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadProfile()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		return m, nil
	case profileUpdatedMsg:
		m.editSubmitting = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка изменения: %v", msg.err)
			return m, nil
		}
		m.screen = screenProfile
		m.user = msg.user
		m.status = "Профиль обновлён"
		m.errMsg = ""
		return m, nil
	case accountDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.screen = screenProfile
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		// аккаунта больше нет, выходим из программы
		return m, tea.Quit
	case versionLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.serverVersion = msg.version
		m.status = "Версия сервера: " + msg.version
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenEdit {
			return m.updateEditing(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenEdit:
		return m.updateEditing(msg)
	case screenConfirmDelete:
		switch keyMsg.String() {
		case "y":
			if m.deleting {
				return m, nil
			}
			m.deleting = true
			return m, m.cmdDelete()
		case "n", "esc":
			m.screen = screenProfile
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadProfile()
	case "e":
		m.startEdit()
		return m, textinput.Blink
	case "d":
		m.screen = screenConfirmDelete
		return m, nil
	case "s":
		return m, m.cmdServerVersion()
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenProfile
			m.editSubmitting = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus + 1) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case "shift+tab":
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case "enter":
			if m.editSubmitting {
				return m, nil
			}

			request := models.UpdateUserRequest{
				Username: strings.TrimSpace(m.editInputs[0].Value()),
				Name:     strings.TrimSpace(m.editInputs[1].Value()),
				Email:    strings.TrimSpace(m.editInputs[2].Value()),
			}
			if request.Username == "" || request.Name == "" || request.Email == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.editSubmitting = true
			return m, m.cmdUpdate(request)
		}
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) startEdit() {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].SetValue(m.user.Username)
	inputs[1].SetValue(m.user.Name)
	inputs[2].SetValue(m.user.Email)
	inputs[0].Focus()

	m.editInputs = inputs
	m.editFocus = 0
	m.screen = screenEdit
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenEdit:
		return appStyle.Render(m.viewEdit())
	case screenConfirmDelete:
		return appStyle.Render(m.viewConfirmDelete())
	default:
		return appStyle.Render(m.viewProfile())
	}
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка профиля...\n")
	} else {
		b.WriteString("Логин   │ " + valueOrDash(m.user.Username) + "\n")
		b.WriteString("Имя     │ " + valueOrDash(m.user.Name) + "\n")
		b.WriteString("Email   │ " + valueOrDash(m.user.Email) + "\n")
		if !m.user.CreatedAt.IsZero() {
			b.WriteString("Создан  │ " + m.user.CreatedAt.Format("2006-01-02 15:04") + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage(
		"ПРОФИЛЬ",
		strings.TrimRight(b.String(), "\n"),
		"e: изменить │ d: удалить аккаунт │ r: обновить │ s: версия сервера │ l: выйти из аккаунта │ q: выход",
	)
}

func (m mainLoopModel) viewEdit() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [" + m.editInputs[0].View() + "]\n")
	b.WriteString("Имя     │ [" + m.editInputs[1].View() + "]\n")
	b.WriteString("Email   │ [" + m.editInputs[2].View() + "]\n")

	if m.editSubmitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("РЕДАКТИРОВАНИЕ ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m mainLoopModel) viewConfirmDelete() string {
	content := "Удалить аккаунт \"" + m.user.Email + "\"?\n\n"
	content += "Действие необратимо: все данные аккаунта будут удалены.\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	users := m.services.UserService

	return func() tea.Msg {
		user, err := users.Me(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(request models.UpdateUserRequest) tea.Cmd {
	ctx := m.ctx
	users := m.services.UserService

	return func() tea.Msg {
		user, err := users.Update(ctx, request)
		return profileUpdatedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	users := m.services.UserService

	return func() tea.Msg {
		return accountDeletedMsg{err: users.Delete(ctx)}
	}
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	users := m.services.UserService

	return func() tea.Msg {
		version, err := users.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}
