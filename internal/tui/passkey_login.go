package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PasskeyLoginModel signs in with a passkey. The username is optional; an
// empty one asks the verifier for a discoverable-credential challenge.
type PasskeyLoginModel struct {
	ctx      context.Context
	passkeys service.PasskeyService

	username   textinput.Model
	spinner    spinner.Model
	state      models.CeremonyState
	submitting bool
	status     string
	errMsg     string
}

func NewPasskeyLoginModel(ctx context.Context, passkeys service.PasskeyService) *PasskeyLoginModel {
	username := textinput.New()
	username.Placeholder = "username (необязательно)"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &PasskeyLoginModel{ctx: ctx, passkeys: passkeys, username: username, spinner: s}
}

func (m *PasskeyLoginModel) Init() tea.Cmd {
	m.state = models.StateIdle
	m.status = ""
	m.errMsg = ""
	m.submitting = false
	return textinput.Blink
}

func (m *PasskeyLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ceremonyStateMsg:
		if m.submitting {
			m.state = msg.state
		}
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.res.Success {
			return m, func() tea.Msg { return LoginDone{} }
		}
		if msg.res.Cancelled() {
			m.status = "Вход отменён"
			return m, nil
		}
		m.errMsg = humanizeResult(msg.res)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.submitting {
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.status = ""
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin(strings.TrimSpace(m.username.Value())))
		}
	}

	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	return m, cmd
}

func (m *PasskeyLoginModel) View() string {
	var b strings.Builder
	b.WriteString("Логин │ [")
	b.WriteString(m.username.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(ceremonyStateText(m.state))
	} else {
		b.WriteString("\n[Войти с passkey]")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ВХОД С PASSKEY", b.String(), "esc: назад │ enter: начать")
}

func (m *PasskeyLoginModel) cmdLogin(username string) tea.Cmd {
	ctx := m.ctx
	passkeys := m.passkeys

	return func() tea.Msg {
		return loginResultMsg{res: passkeys.Login(ctx, username)}
	}
}

func ceremonyStateText(state models.CeremonyState) string {
	switch state {
	case models.StateChallengeRequested:
		return "Запрос challenge у сервера..."
	case models.StateChallengeReceived:
		return "Challenge получен"
	case models.StateAuthenticatorInvoked:
		return "Ожидание аутентификатора..."
	case models.StateResultSubmitted:
		return "Проверка на сервере..."
	case models.StateVerified:
		return "Готово"
	default:
		return "Подготовка..."
	}
}
