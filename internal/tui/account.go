package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type accountSavedMsg struct {
	res models.Result[models.User]
}

var accountFields = []struct {
	field string
	label string
}{
	{field: "username", label: "Логин   "},
	{field: "email", label: "Email   "},
	{field: "password", label: "Пароль  "},
}

// AccountModel edits the account. Blank inputs are left untouched.
type AccountModel struct {
	ctx     context.Context
	account service.AccountService

	inputs []textinput.Model
	focus  int
	saving bool
	status string
	errMsg string
}

func NewAccountModel(ctx context.Context, account service.AccountService) *AccountModel {
	inputs := make([]textinput.Model, len(accountFields))
	for i, f := range accountFields {
		in := textinput.New()
		in.Placeholder = "новое значение (" + f.field + ")"
		in.CharLimit = 256
		in.Width = 40
		if f.field == "password" {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	return &AccountModel{ctx: ctx, account: account, inputs: inputs}
}

func (m *AccountModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.saving = false
	m.status = ""
	m.errMsg = ""
	return m.inputs[0].Focus()
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountSavedMsg:
		m.saving = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.errMsg = ""
		m.status = "Профиль обновлён: " + msg.res.Value.Username
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.save):
			m.saving = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdSave(m.edits())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AccountModel) View() string {
	var b strings.Builder
	for i, f := range accountFields {
		b.WriteString(f.label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.saving {
		b.WriteString("\n[Сохранение...]")
	} else {
		b.WriteString("\n[Сохранить]")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ПРОФИЛЬ", b.String(), "tab: след. поле │ enter: сохранить │ esc: назад")
}

// edits passes every field through; the service drops the blank ones.
func (m *AccountModel) edits() []models.AccountEdit {
	edits := make([]models.AccountEdit, 0, len(m.inputs))
	for i, f := range accountFields {
		edits = append(edits, models.AccountEdit{Field: f.field, NewValue: m.inputs[i].Value()})
	}
	return edits
}

func (m *AccountModel) cmdSave(edits []models.AccountEdit) tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		return accountSavedMsg{res: account.Edit(ctx, edits)}
	}
}
