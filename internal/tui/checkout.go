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

// CheckoutModel asks for a product and an optional price and returns the
// checkout link. The anonymous variant is reachable from the start menu and
// sends no session.
type CheckoutModel struct {
	ctx       context.Context
	account   service.AccountService
	anonymous bool

	product textinput.Model
	price   textinput.Model
	focus   int
	pending bool
	url     string
	status  string
	errMsg  string
}

func NewCheckoutModel(ctx context.Context, account service.AccountService, anonymous bool) *CheckoutModel {
	product := textinput.New()
	product.Placeholder = "id продукта"
	product.CharLimit = 128
	product.Width = 40

	price := textinput.New()
	price.Placeholder = "id цены (необязательно)"
	price.CharLimit = 128
	price.Width = 40

	return &CheckoutModel{ctx: ctx, account: account, anonymous: anonymous, product: product, price: price}
}

func (m *CheckoutModel) Init() tea.Cmd {
	m.product.SetValue("")
	m.price.SetValue("")
	m.price.Blur()
	m.focus = 0
	m.pending = false
	m.url = ""
	m.status = ""
	m.errMsg = ""
	return m.product.Focus()
}

func (m *CheckoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutMsg:
		m.pending = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.url = msg.res.Value
		m.product.Blur()
		m.price.Blur()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Ссылка скопирована в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: m.back()} }
		}
		if m.url != "" {
			switch {
			case key.Matches(msg, keys.copy):
				return m, copyToClipboard(m.url)
			case key.Matches(msg, keys.newItem):
				return m, m.Init()
			}
			return m, nil
		}
		switch {
		// j/k are typed into the inputs, only real arrows move focus
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab),
			msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
			return m, m.switchFocus()
		case key.Matches(msg, keys.enter):
			m.pending = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdCheckout(models.CheckoutItem{Product: m.product.Value(), PriceID: m.price.Value()})
		}
	}

	if m.url != "" {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.product, cmd = m.product.Update(msg)
	} else {
		m.price, cmd = m.price.Update(msg)
	}
	return m, cmd
}

func (m *CheckoutModel) View() string {
	var b strings.Builder

	if m.url != "" {
		b.WriteString("Откройте ссылку в браузере:\n\n")
		b.WriteString(m.url)
	} else {
		b.WriteString("Продукт │ [")
		b.WriteString(m.product.View())
		b.WriteString("]\n")
		b.WriteString("Цена    │ [")
		b.WriteString(m.price.View())
		b.WriteString("]")
		if m.pending {
			b.WriteString("\n\nСоздание платежа...")
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	title := "ОФОРМЛЕНИЕ ПОДПИСКИ"
	if m.anonymous {
		title += " (БЕЗ ВХОДА)"
	}
	help := "tab: след. поле │ enter: получить ссылку │ esc: назад"
	if m.url != "" {
		help = "c: скопировать │ n: новый платёж │ esc: назад"
	}
	return renderPage(title, b.String(), help)
}

func (m *CheckoutModel) back() string {
	if m.anonymous {
		return pageMenu
	}
	return pageHome
}

func (m *CheckoutModel) switchFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.product.Blur()
		return m.price.Focus()
	}
	m.focus = 0
	m.price.Blur()
	return m.product.Focus()
}

func (m *CheckoutModel) cmdCheckout(item models.CheckoutItem) tea.Cmd {
	ctx := m.ctx
	account := m.account
	anonymous := m.anonymous

	return func() tea.Msg {
		items := []models.CheckoutItem{item}
		if anonymous {
			return checkoutMsg{res: account.CheckoutAnonymous(ctx, items)}
		}
		return checkoutMsg{res: account.Checkout(ctx, items)}
	}
}
