// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authorizeStep int

const (
	authorizeStepApp authorizeStep = iota
	authorizeStepScopes
	authorizeStepDone
)

// AuthorizeModel grants a third-party application a chosen set of scopes and
// shows the resulting authorization code.
type AuthorizeModel struct {
	ctx  context.Context
	apps service.AppService

	step     authorizeStep
	appInput textinput.Model
	app      models.PublicApp
	scopes   []models.ScopeDefinition
	selected map[int]bool
	idx      int
	code     string
	busy     bool
	status   string
	errMsg   string
}

func NewAuthorizeModel(ctx context.Context, apps service.AppService) *AuthorizeModel {
	appInput := textinput.New()
	appInput.Placeholder = "id приложения"
	appInput.CharLimit = 128
	appInput.Width = 40

	return &AuthorizeModel{ctx: ctx, apps: apps, appInput: appInput}
}

func (m *AuthorizeModel) Init() tea.Cmd {
	m.step = authorizeStepApp
	m.app = models.PublicApp{}
	m.code = ""
	m.busy = false
	m.status = ""
	m.errMsg = ""
	m.appInput.SetValue("")
	m.scopes = m.apps.Scopes()
	m.selected = make(map[int]bool, len(m.scopes))
	m.idx = 0
	return m.appInput.Focus()
}

func (m *AuthorizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case publicAppMsg:
		m.busy = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.app = msg.res.Value
		if m.app.ID == "" {
			m.app.ID = strings.TrimSpace(m.appInput.Value())
		}
		m.errMsg = ""
		m.step = authorizeStepScopes
		m.appInput.Blur()
		return m, nil

	case authorizedMsg:
		m.busy = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.code = msg.res.Value
		m.errMsg = ""
		m.step = authorizeStepDone
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Код скопирован в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch m.step {
		case authorizeStepApp:
			return m.updateApp(msg)
		case authorizeStepScopes:
			return m.updateScopes(msg)
		case authorizeStepDone:
			return m.updateDone(msg)
		}
	}

	if m.step == authorizeStepApp {
		var cmd tea.Cmd
		m.appInput, cmd = m.appInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AuthorizeModel) updateApp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(msg, keys.enter):
		appID := strings.TrimSpace(m.appInput.Value())
		if appID == "" {
			m.errMsg = "Введите id приложения"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdPublicApp(appID)
	}

	var cmd tea.Cmd
	m.appInput, cmd = m.appInput.Update(msg)
	return m, cmd
}

func (m *AuthorizeModel) updateScopes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.step = authorizeStepApp
		m.errMsg = ""
		return m, m.appInput.Focus()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.scopes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		m.selected[m.idx] = !m.selected[m.idx]
	case key.Matches(msg, keys.enter):
		ids := m.selectedIDs()
		if len(ids) == 0 {
			m.errMsg = "Выберите хотя бы одно разрешение"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdAuthorize(m.app.ID, ids)
	}
	return m, nil
}

func (m *AuthorizeModel) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		return m, copyToClipboard(m.code)
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.code = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	}
	return m, nil
}

func (m *AuthorizeModel) View() string {
	var b strings.Builder
	help := "enter: далее │ esc: назад"

	switch m.step {
	case authorizeStepApp:
		b.WriteString("Приложение │ [")
		b.WriteString(m.appInput.View())
		b.WriteString("]")
		if m.busy {
			b.WriteString("\n\nПоиск приложения...")
		}

	case authorizeStepScopes:
		b.WriteString(fmt.Sprintf("%s запрашивает доступ\n", m.app.Name))
		if m.app.Description != "" {
			b.WriteString(fitText(m.app.Description, 60))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		for i, def := range m.scopes {
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor(i == m.idx), checkbox(m.selected[i]), def.DisplayName))
			if i == m.idx && def.Description != "" {
				b.WriteString("      ")
				b.WriteString(helpStyle.Render(def.Description))
				b.WriteString("\n")
			}
		}
		if m.busy {
			b.WriteString("\nАвторизация...")
		}
		help = "space: выбрать │ enter: разрешить │ esc: назад"

	case authorizeStepDone:
		b.WriteString("Код авторизации:\n\n")
		b.WriteString(m.code)
		if m.app.RedirectURI != "" {
			b.WriteString("\n\nПередайте код на ")
			b.WriteString(m.app.RedirectURI)
		}
		help = "c: скопировать │ enter/esc: готово"
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("АВТОРИЗАЦИЯ ПРИЛОЖЕНИЯ", strings.TrimRight(b.String(), "\n"), help)
}

// selectedIDs keeps table order regardless of the toggle order.
func (m *AuthorizeModel) selectedIDs() []string {
	ids := make([]string, 0, len(m.selected))
	for i, def := range m.scopes {
		if m.selected[i] {
			ids = append(ids, def.ID)
		}
	}
	return ids
}

func (m *AuthorizeModel) cmdPublicApp(appID string) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return publicAppMsg{res: apps.PublicApp(ctx, appID)}
	}
}

func (m *AuthorizeModel) cmdAuthorize(appID string, scopeIDs []string) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return authorizedMsg{res: apps.Authorize(ctx, appID, scopeIDs)}
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
