package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type deauthorizedMsg struct {
	res models.Result[struct{}]
}

// AppsModel lists applications holding a grant and revokes them.
type AppsModel struct {
	ctx  context.Context
	auth service.AuthService
	apps service.AppService

	items   []models.AuthorizedApp
	idx     int
	loading bool
	confirm *confirmModel
	status  string
	errMsg  string
}

func NewAppsModel(ctx context.Context, auth service.AuthService, apps service.AppService) *AppsModel {
	return &AppsModel{ctx: ctx, auth: auth, apps: apps}
}

func (m *AppsModel) Init() tea.Cmd {
	m.confirm = nil
	m.status = ""
	m.errMsg = ""
	return m.reload()
}

func (m *AppsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		m.loading = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.items = msg.res.Value.AuthorizedApps
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case deauthorizedMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.status = "Доступ отозван"
		return m, m.reload()

	case tea.KeyMsg:
		if m.confirm != nil {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirm = nil
				if m.idx < len(m.items) {
					return m, m.cmdDeauthorize(m.items[m.idx].AppID)
				}
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.confirm = nil
			}
			return m, nil
		}

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
		case key.Matches(msg, keys.delete):
			if m.idx < len(m.items) {
				m.confirm = &confirmModel{verb: "Отозвать доступ", message: m.items[m.idx].AppID}
			}
		}
	}
	return m, nil
}

func (m *AppsModel) View() string {
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Нет приложений с доступом")
	default:
		for i, app := range m.items {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.idx), app.AppID))
			if i != m.idx {
				continue
			}
			for _, def := range m.apps.DescribeScopes(app.Scopes) {
				b.WriteString("    - ")
				b.WriteString(def.DisplayName)
				b.WriteString("\n")
			}
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ПРИЛОЖЕНИЯ С ДОСТУПОМ", strings.TrimRight(b.String(), "\n"),
		"d: отозвать │ r: обновить │ esc: назад")
}

func (m *AppsModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return userLoadedMsg{res: auth.CurrentUser(ctx)}
	}
}

func (m *AppsModel) cmdDeauthorize(appID string) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return deauthorizedMsg{res: apps.Deauthorize(ctx, appID)}
	}
}
