package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PaymentModel shows a one-off billing portal link.
type PaymentModel struct {
	ctx     context.Context
	account service.AccountService

	url     string
	loading bool
	status  string
	errMsg  string
}

func NewPaymentModel(ctx context.Context, account service.AccountService) *PaymentModel {
	return &PaymentModel{ctx: ctx, account: account}
}

func (m *PaymentModel) Init() tea.Cmd {
	m.url = ""
	m.status = ""
	m.errMsg = ""
	m.loading = true

	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		return portalMsg{res: account.PaymentPortal(ctx)}
	}
}

func (m *PaymentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case portalMsg:
		m.loading = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.url = msg.res.Value
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Ссылка скопирована в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.copy):
			if m.url != "" {
				return m, copyToClipboard(m.url)
			}
		}
	}
	return m, nil
}

func (m *PaymentModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Получение ссылки...")
	case m.url != "":
		b.WriteString("Откройте ссылку в браузере:\n\n")
		b.WriteString(m.url)
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ПЛАТЁЖНЫЙ ПОРТАЛ", b.String(), "c: скопировать │ esc: назад")
}
