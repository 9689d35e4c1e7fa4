// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the password login screen. It renders two
// text inputs (username and password) and dispatches an async login command on
// form submission. When the account has TOTP enabled the form switches to a
// single code input and the login is completed with [service.AuthService.SubmitTOTP].
// On success a [LoginDone] message is produced and handled by [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	totpInput  textinput.Model
	mfaToken   string
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	totpInput := textinput.New()
	totpInput.Placeholder = "000000"
	totpInput.CharLimit = 8
	totpInput.Width = 10

	return &LoginModel{
		ctx:       ctx,
		auth:      auth,
		inputs:    []textinput.Model{loginInput, passwordInput},
		totpInput: totpInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg: clears submitting state; switches to the TOTP step or
//     reports the error.
//   - esc: leaves the TOTP step, or navigates back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		res := result.res
		switch {
		case !res.Success:
			m.errMsg = humanizeResult(res)
			return m, nil
		case res.Value.MFARequired:
			m.mfaToken = res.Value.MFAToken
			m.errMsg = ""
			m.inputs[m.focus].Blur()
			m.totpInput.SetValue("")
			m.totpInput.Focus()
			return m, textinput.Blink
		default:
			return m, func() tea.Msg { return LoginDone{} }
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			if m.inTOTPStep() {
				m.mfaToken = ""
				m.totpInput.Blur()
				m.inputs[m.focus].Focus()
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			if !m.inTOTPStep() {
				m.focusNext()
			}
			return m, nil
		case "shift+tab":
			if !m.inTOTPStep() {
				m.focusPrev()
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	if m.inTOTPStep() {
		m.totpInput, cmd = m.totpInput.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table, or
// the TOTP code prompt during the second step.
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.inTOTPStep() {
		b.WriteString("Для аккаунта включена двухфакторная аутентификация\n\n")
		b.WriteString("Код TOTP │ [")
		b.WriteString(m.totpInput.View())
		b.WriteString("]\n")
	} else {
		b.WriteString("Поле    │ Значение\n")
		b.WriteString("────────┼────────────────────────────────────────────\n")
		b.WriteString("Логин   │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Пароль  │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Войти...]")
	} else {
		b.WriteString("\n[Войти]")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("ВХОД", b.String(), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) submit() tea.Cmd {
	if m.inTOTPStep() {
		code := strings.TrimSpace(m.totpInput.Value())
		if code == "" {
			m.errMsg = "Введите код"
			return nil
		}
		m.errMsg = ""
		m.submitting = true
		return m.cmdSubmitTOTP(m.mfaToken, code)
	}

	login := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()
	if login == "" || pass == "" {
		m.errMsg = "Логин и пароль обязательны"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdLogin(login, pass)
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginResultMsg{res: auth.Login(ctx, login, pass)}
	}
}

func (m *LoginModel) cmdSubmitTOTP(mfaToken, code string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginResultMsg{res: auth.SubmitTOTP(ctx, mfaToken, code)}
	}
}

func (m *LoginModel) inTOTPStep() bool {
	return m.mfaToken != ""
}

// reset clears secrets left over from a previous visit.
func (m *LoginModel) reset() {
	m.inputs[1].SetValue("")
	m.totpInput.SetValue("")
	m.totpInput.Blur()
	m.mfaToken = ""
	m.errMsg = ""
	m.submitting = false
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
