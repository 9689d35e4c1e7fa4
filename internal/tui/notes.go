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

// NotesModel lists vault notes. Note content is never fetched here; enter
// hands the id to [NoteModel].
type NotesModel struct {
	ctx   context.Context
	vault service.VaultService

	items   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	confirm *confirmModel
	status  string
	errMsg  string
}

func NewNotesModel(ctx context.Context, vault service.VaultService) *NotesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &NotesModel{ctx: ctx, vault: vault, spinner: s}
}

func (m *NotesModel) Init() tea.Cmd {
	m.confirm = nil
	m.errMsg = ""
	return m.reload()
}

func (m *NotesModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
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

	case noteDeletedMsg:
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		m.status = "Заметка удалена"
		return m, m.reload()

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *NotesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		return m, func() tea.Msg {
			return NavigateTo{Page: pageNote, Payload: openNoteMsg{create: true}}
		}
	case key.Matches(msg, keys.enter):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageNote, Payload: openNoteMsg{noteID: note.ID}}
		}
	case key.Matches(msg, keys.delete):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{message: noteTitle(note)}
	}
	return m, nil
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(note.ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = nil
	}
	return m, nil
}

func (m *NotesModel) View() string {
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Нет заметок")
	default:
		for i, note := range m.items {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.idx), fitText(noteTitle(note), 48)))
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ЗАМЕТКИ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новая │ d: удалить │ r: обновить │ esc: назад")
}

func (m *NotesModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	vault := m.vault

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return notesLoadedMsg{res: vault.List(ctx)}
	})
}

func (m *NotesModel) cmdDelete(noteID string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return noteDeletedMsg{res: vault.Delete(ctx, noteID)}
	}
}

func noteTitle(note models.Note) string {
	if note.Name != "" {
		return note.Name
	}
	return note.ID
}
