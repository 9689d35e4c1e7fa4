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

type logoutMsg struct {
	err error
}

// HomeModel is the landing page of a signed-in user.
type HomeModel struct {
	ctx  context.Context
	auth service.AuthService

	user    models.User
	loaded  bool
	items   []menuItem
	idx     int
	errMsg  string
	pending bool
}

func NewHomeModel(ctx context.Context, auth service.AuthService) *HomeModel {
	return &HomeModel{
		ctx:  ctx,
		auth: auth,
		items: []menuItem{
			{title: "Заметки", page: pageNotes},
			{title: "Авторизовать приложение", page: pageAuthorize},
			{title: "Приложения с доступом", page: pageApps},
			{title: "Мои OAuth-приложения", page: pageDevApps},
			{title: "Passkeys", page: pagePasskeys},
			{title: "Профиль", page: pageAccount},
			{title: "Двухфакторная аутентификация", page: pageTOTP},
			{title: "Оформить подписку", page: pageCheckout},
			{title: "Платёжный портал", page: pagePayment},
			{title: "Выйти", page: ""},
		},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.errMsg = ""
	m.pending = false
	return m.cmdLoadUser()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.user = msg.res.Value
		m.loaded = true
		m.errMsg = ""
		return m, nil

	case logoutMsg:
		m.pending = false
		text := "Вы вышли из аккаунта"
		if msg.err != nil {
			text = "Вы вышли из аккаунта, но локальная сессия не удалена: " + msg.err.Error()
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: menuNotice{text: text}}
		}

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.cmdLoadUser()
		case key.Matches(msg, keys.enter):
			page := m.items[m.idx].page
			if page == "" {
				m.pending = true
				return m, m.cmdLogout()
			}
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.loaded {
		b.WriteString(fmt.Sprintf("Пользователь │ %s\n", m.user.Username))
		b.WriteString(fmt.Sprintf("Email        │ %s\n", valueOrDash(m.user.Email)))
		totp := "выключена"
		if m.user.TOTPEnabled {
			totp = "включена"
		}
		b.WriteString(fmt.Sprintf("2FA          │ %s\n", totp))
		b.WriteString(fmt.Sprintf("Приложения   │ %d\n\n", len(m.user.AuthorizedApps)))
	} else {
		b.WriteString("Загрузка профиля...\n\n")
	}

	for i, item := range m.items {
		b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.idx), item.title))
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("SERBLE", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ r: обновить")
}

func (m *HomeModel) cmdLoadUser() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return userLoadedMsg{res: auth.CurrentUser(ctx)}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutMsg{err: auth.Logout(ctx)}
	}
}
