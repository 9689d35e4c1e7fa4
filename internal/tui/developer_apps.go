package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type devPhase int

const (
	devPhaseList devPhase = iota
	devPhaseForm
	devPhaseDetail
)

var devAppFields = []struct {
	field string
	label string
}{
	{field: "name", label: "Название     "},
	{field: "description", label: "Описание     "},
	{field: "redirectUri", label: "Redirect URI "},
}

// DevAppsModel manages the OAuth applications the user registered as a
// developer: list, create, edit, delete and a detail view with the client
// secret.
type DevAppsModel struct {
	ctx  context.Context
	apps service.AppService

	phase   devPhase
	items   []models.OAuthApp
	idx     int
	loading bool
	confirm *confirmModel

	// form; editing is nil while creating
	inputs  []textinput.Model
	focus   int
	editing *models.OAuthApp
	saving  bool

	detail models.OAuthApp

	status string
	errMsg string
}

func NewDevAppsModel(ctx context.Context, apps service.AppService) *DevAppsModel {
	inputs := make([]textinput.Model, len(devAppFields))
	for i := range devAppFields {
		in := textinput.New()
		in.CharLimit = 512
		in.Width = 48
		inputs[i] = in
	}
	inputs[2].Placeholder = "https://example.com/callback"

	return &DevAppsModel{ctx: ctx, apps: apps, inputs: inputs}
}

func (m *DevAppsModel) Init() tea.Cmd {
	m.phase = devPhaseList
	m.confirm = nil
	m.status = ""
	m.errMsg = ""
	return m.reload()
}

func (m *DevAppsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ownedAppsMsg:
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

	case ownedAppMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.detail = msg.res.Value
		m.phase = devPhaseDetail
		m.errMsg = ""
		return m, nil

	case appSavedMsg:
		m.saving = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.closeForm()
		m.status = "Приложение сохранено"
		if msg.create {
			// the secret is shown once right after creation
			m.detail = msg.res.Value
			m.phase = devPhaseDetail
			m.status = "Приложение создано"
		}
		return m, m.reload()

	case appDeletedMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.status = "Приложение удалено"
		return m, m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Секрет скопирован в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case devPhaseForm:
			return m.updateForm(msg)
		case devPhaseDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.phase == devPhaseForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DevAppsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			if m.idx < len(m.items) {
				return m, m.cmdDelete(m.items[m.idx].ID)
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
	case key.Matches(msg, keys.newItem):
		return m, m.openForm(nil)
	case key.Matches(msg, keys.edit):
		if m.idx < len(m.items) {
			app := m.items[m.idx]
			return m, m.openForm(&app)
		}
	case key.Matches(msg, keys.delete):
		if m.idx < len(m.items) {
			m.confirm = &confirmModel{message: valueOrDash(m.items[m.idx].Name)}
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(m.items) {
			return m, m.cmdLoad(m.items[m.idx].ID)
		}
	}
	return m, nil
}

func (m *DevAppsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.closeForm()
		return m, nil
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
		if m.editing == nil {
			return m, m.cmdCreate(models.OAuthAppDraft{
				Name:        m.inputs[0].Value(),
				Description: m.inputs[1].Value(),
				RedirectURI: m.inputs[2].Value(),
			})
		}
		return m, m.cmdEdit(m.editing.ID, m.edits())
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *DevAppsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = models.OAuthApp{}
		m.phase = devPhaseList
		m.status = ""
	case key.Matches(msg, keys.copy):
		if m.detail.ClientSecret != "" {
			return m, copyToClipboard(m.detail.ClientSecret)
		}
	}
	return m, nil
}

func (m *DevAppsModel) View() string {
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}

	var b strings.Builder
	title := "МОИ OAUTH-ПРИЛОЖЕНИЯ"
	help := "enter: открыть │ n: новое │ e: изменить │ d: удалить │ r: обновить │ esc: назад"

	switch m.phase {
	case devPhaseForm:
		title = "НОВОЕ ПРИЛОЖЕНИЕ"
		if m.editing != nil {
			title = "ИЗМЕНЕНИЕ ПРИЛОЖЕНИЯ"
		}
		for i, f := range devAppFields {
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
		help = "tab: след. поле │ enter: сохранить │ esc: отмена"

	case devPhaseDetail:
		title = "ПРИЛОЖЕНИЕ"
		b.WriteString(fmt.Sprintf("ID           │ %s\n", m.detail.ID))
		b.WriteString(fmt.Sprintf("Название     │ %s\n", valueOrDash(m.detail.Name)))
		b.WriteString(fmt.Sprintf("Описание     │ %s\n", valueOrDash(m.detail.Description)))
		b.WriteString(fmt.Sprintf("Redirect URI │ %s\n", valueOrDash(m.detail.RedirectURI)))
		b.WriteString(fmt.Sprintf("Секрет       │ %s", valueOrDash(m.detail.ClientSecret)))
		help = "c: скопировать секрет │ esc: к списку"

	default:
		switch {
		case m.loading:
			b.WriteString("Загрузка...")
		case len(m.items) == 0:
			b.WriteString("Нет зарегистрированных приложений")
		default:
			for i, app := range m.items {
				b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor(i == m.idx), fitText(valueOrDash(app.Name), 24), app.ID))
			}
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), help)
}

// openForm fills the inputs from app, or clears them for a new one.
func (m *DevAppsModel) openForm(app *models.OAuthApp) tea.Cmd {
	m.editing = app
	values := []string{"", "", ""}
	if app != nil {
		values = []string{app.Name, app.Description, app.RedirectURI}
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.phase = devPhaseForm
	m.status = ""
	m.errMsg = ""
	return m.inputs[0].Focus()
}

func (m *DevAppsModel) closeForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.editing = nil
	m.saving = false
	m.phase = devPhaseList
}

// edits holds only the fields that differ from the app being edited.
func (m *DevAppsModel) edits() []models.AppEdit {
	original := []string{m.editing.Name, m.editing.Description, m.editing.RedirectURI}

	var edits []models.AppEdit
	for i, f := range devAppFields {
		if v := m.inputs[i].Value(); v != original[i] {
			edits = append(edits, models.AppEdit{Field: f.field, NewValue: v})
		}
	}
	return edits
}

func (m *DevAppsModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return ownedAppsMsg{res: apps.OwnedApps(ctx)}
	}
}

func (m *DevAppsModel) cmdLoad(appID string) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return ownedAppMsg{res: apps.OwnedApp(ctx, appID)}
	}
}

func (m *DevAppsModel) cmdCreate(draft models.OAuthAppDraft) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return appSavedMsg{res: apps.CreateApp(ctx, draft), create: true}
	}
}

func (m *DevAppsModel) cmdEdit(appID string, edits []models.AppEdit) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return appSavedMsg{res: apps.EditApp(ctx, appID, edits)}
	}
}

func (m *DevAppsModel) cmdDelete(appID string) tea.Cmd {
	ctx := m.ctx
	apps := m.apps

	return func() tea.Msg {
		return appDeletedMsg{res: apps.DeleteApp(ctx, appID)}
	}
}
