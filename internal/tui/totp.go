package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TOTPModel enrols a TOTP second factor: it shows the enrolment QR code and
// confirms it with the first code from the authenticator app.
type TOTPModel struct {
	ctx     context.Context
	account service.AccountService

	qr      string
	loading bool
	code    textinput.Model
	pending bool
	done    bool
	status  string
	errMsg  string
}

func NewTOTPModel(ctx context.Context, account service.AccountService) *TOTPModel {
	code := textinput.New()
	code.Placeholder = "123456"
	code.CharLimit = 8
	code.Width = 10

	return &TOTPModel{ctx: ctx, account: account, code: code}
}

func (m *TOTPModel) Init() tea.Cmd {
	m.qr = ""
	m.code.SetValue("")
	m.pending = false
	m.done = false
	m.status = ""
	m.errMsg = ""
	m.loading = true

	ctx := m.ctx
	account := m.account
	return tea.Batch(m.code.Focus(), func() tea.Msg {
		return totpQRMsg{res: account.TOTPQRCode(ctx)}
	})
}

func (m *TOTPModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case totpQRMsg:
		m.loading = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		qr, err := renderQR(msg.res.Value)
		if err != nil {
			m.errMsg = "Не удалось показать QR-код: " + err.Error()
			return m, nil
		}
		m.qr = qr
		return m, nil

	case totpEnabledMsg:
		m.pending = false
		m.code.SetValue("")
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.done = true
		m.code.Blur()
		m.errMsg = ""
		m.status = "Двухфакторная аутентификация включена"
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.enter):
			if m.done {
				return m, nil
			}
			m.pending = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdEnable(m.code.Value())
		}
	}

	if m.done {
		return m, nil
	}
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m *TOTPModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Получение QR-кода...\n\n")
	case m.qr != "":
		b.WriteString("Отсканируйте код приложением-аутентификатором:\n\n")
		b.WriteString(m.qr)
		b.WriteString("\n\n")
	}

	if !m.done {
		b.WriteString("Код │ [")
		b.WriteString(m.code.View())
		b.WriteString("]")
		if m.pending {
			b.WriteString("\n\nПроверка...")
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ДВУХФАКТОРНАЯ АУТЕНТИФИКАЦИЯ", b.String(), "enter: подтвердить │ esc: назад")
}

func (m *TOTPModel) cmdEnable(code string) tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		return totpEnabledMsg{res: account.EnableTOTP(ctx, code)}
	}
}
