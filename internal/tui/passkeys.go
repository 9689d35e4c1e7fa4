package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PasskeysModel lists the account's passkeys and registers new ones with the
// local authenticator.
type PasskeysModel struct {
	ctx      context.Context
	passkeys service.PasskeyService

	items       []models.Passkey
	idx         int
	loading     bool
	registering bool
	state       models.CeremonyState
	spinner     spinner.Model
	confirm     *confirmModel
	status      string
	errMsg      string
}

func NewPasskeysModel(ctx context.Context, passkeys service.PasskeyService) *PasskeysModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &PasskeysModel{ctx: ctx, passkeys: passkeys, spinner: s}
}

func (m *PasskeysModel) Init() tea.Cmd {
	m.confirm = nil
	m.status = ""
	m.errMsg = ""
	return m.reload()
}

func (m *PasskeysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.registering {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ceremonyStateMsg:
		if m.registering {
			m.state = msg.state
		}
		return m, nil

	case passkeysLoadedMsg:
		m.loading = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.items = msg.res.Value
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case passkeyRegisteredMsg:
		m.registering = false
		switch {
		case msg.res.Success:
			m.status = "Passkey зарегистрирован"
			return m, m.reload()
		case msg.res.Cancelled():
			m.status = "Регистрация отменена"
		default:
			m.errMsg = humanizeResult(msg.res)
		}
		return m, nil

	case passkeyDeletedMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.status = "Passkey удалён"
		return m, m.reload()

	case tea.KeyMsg:
		if m.registering {
			return m, nil
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *PasskeysModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m, m.reload()
	case key.Matches(msg, keys.register):
		m.registering = true
		m.state = models.StateIdle
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdRegister())
	case key.Matches(msg, keys.delete):
		if m.idx < len(m.items) {
			m.confirm = &confirmModel{message: m.items[m.idx].Name}
		}
	}
	return m, nil
}

func (m *PasskeysModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		if m.idx >= len(m.items) {
			return m, nil
		}
		return m, m.cmdDelete(m.items[m.idx].Name)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = nil
	}
	return m, nil
}

func (m *PasskeysModel) View() string {
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Нет зарегистрированных passkey")
	default:
		for i, pk := range m.items {
			created := "-"
			if !pk.CreatedAt.IsZero() {
				created = pk.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor(i == m.idx), fitText(pk.Name, 24), created))
		}
	}

	if m.registering {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(ceremonyStateText(m.state))
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("PASSKEYS", strings.TrimRight(b.String(), "\n"),
		"a: добавить │ d: удалить │ r: обновить │ esc: назад")
}

func (m *PasskeysModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	passkeys := m.passkeys

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return passkeysLoadedMsg{res: passkeys.List(ctx)}
	})
}

func (m *PasskeysModel) cmdRegister() tea.Cmd {
	ctx := m.ctx
	passkeys := m.passkeys

	return func() tea.Msg {
		return passkeyRegisteredMsg{res: passkeys.Register(ctx, models.RegistrationPreferences{})}
	}
}

func (m *PasskeysModel) cmdDelete(name string) tea.Cmd {
	ctx := m.ctx
	passkeys := m.passkeys

	return func() tea.Msg {
		return passkeyDeletedMsg{res: passkeys.Delete(ctx, name)}
	}
}
