package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notePhase int

const (
	notePhaseLoading notePhase = iota
	notePhasePassword
	notePhaseEdit
)

// NoteModel unlocks, edits and creates a single vault note. The note password
// is asked for only when the session cache holds none for this note.
type NoteModel struct {
	ctx   context.Context
	vault service.VaultService

	noteID   string
	create   bool
	phase    notePhase
	password textinput.Model
	remember bool
	secret   string
	editor   textarea.Model
	saving   bool
	status   string
	errMsg   string
}

func NewNoteModel(ctx context.Context, vault service.VaultService) *NoteModel {
	password := textinput.New()
	password.Placeholder = "пароль заметки"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	editor := textarea.New()
	editor.Placeholder = "Текст заметки"
	editor.SetWidth(60)
	editor.SetHeight(12)
	editor.CharLimit = 0

	return &NoteModel{ctx: ctx, vault: vault, password: password, editor: editor, remember: true}
}

// Init is reached only when the page is opened without an [openNoteMsg]
// payload; there is nothing to show then.
func (m *NoteModel) Init() tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: pageNotes} }
}

func (m *NoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openNoteMsg:
		return m, m.open(msg)

	case noteOpenedMsg:
		return m, m.onOpened(msg.res)

	case noteSavedMsg:
		m.saving = false
		if !msg.res.Success {
			m.errMsg = humanizeResult(msg.res)
			return m, nil
		}
		if msg.create {
			m.noteID = msg.res.Value
			m.create = false
			m.status = "Заметка создана"
		} else {
			m.status = "Сохранено"
		}
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) && !m.saving {
			m.lock()
			return m, func() tea.Msg { return NavigateTo{Page: pageNotes} }
		}
		switch m.phase {
		case notePhasePassword:
			return m.updatePassword(msg)
		case notePhaseEdit:
			return m.updateEditor(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.phase {
	case notePhasePassword:
		m.password, cmd = m.password.Update(msg)
	case notePhaseEdit:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m *NoteModel) open(msg openNoteMsg) tea.Cmd {
	m.lock()
	m.noteID = msg.noteID
	m.create = msg.create

	if m.create {
		return m.askPassword()
	}

	if _, ok := m.vault.CachedPassword(m.ctx, m.noteID); !ok {
		return m.askPassword()
	}

	// an empty password makes the service use the cached one
	m.phase = notePhaseLoading
	return m.cmdOpen("", false)
}

func (m *NoteModel) onOpened(res models.Result[string]) tea.Cmd {
	if !res.Success {
		if errors.Is(res.Err, service.ErrPasswordRequired) {
			return m.askPassword()
		}
		cmd := m.askPassword()
		m.errMsg = humanizeResult(res)
		return cmd
	}

	m.secret = m.password.Value()
	m.password.SetValue("")
	m.password.Blur()
	m.phase = notePhaseEdit
	m.errMsg = ""
	m.editor.SetValue(res.Value)
	return m.editor.Focus()
}

func (m *NoteModel) updatePassword(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.remember = !m.remember
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.password.Value() == "" {
			m.errMsg = "Введите пароль заметки"
			return m, nil
		}
		m.errMsg = ""
		if m.create {
			m.secret = m.password.Value()
			m.password.SetValue("")
			m.password.Blur()
			m.phase = notePhaseEdit
			m.editor.SetValue("")
			return m, m.editor.Focus()
		}
		m.phase = notePhaseLoading
		return m, m.cmdOpen(m.password.Value(), m.remember)
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *NoteModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.save) {
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.status = ""
		m.errMsg = ""
		if m.create {
			return m, m.cmdCreate(m.editor.Value())
		}
		return m, m.cmdSave(m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *NoteModel) View() string {
	var b strings.Builder

	title := "ЗАМЕТКА"
	if m.create {
		title = "НОВАЯ ЗАМЕТКА"
	} else {
		b.WriteString("ID │ ")
		b.WriteString(valueOrDash(m.noteID))
		b.WriteString("\n\n")
	}

	switch m.phase {
	case notePhaseLoading:
		b.WriteString("Расшифровка...")
	case notePhasePassword:
		b.WriteString("Пароль     │ [")
		b.WriteString(m.password.View())
		b.WriteString("]\n")
		b.WriteString("Запомнить  │ ")
		b.WriteString(checkbox(m.remember))
	case notePhaseEdit:
		b.WriteString(m.editor.View())
		if m.saving {
			b.WriteString("\n\nСохранение...")
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	help := "esc: назад"
	switch m.phase {
	case notePhasePassword:
		help = "enter: открыть │ tab: запомнить пароль │ esc: назад"
	case notePhaseEdit:
		help = "ctrl+s: сохранить │ esc: назад"
	}
	return renderPage(title, b.String(), help)
}

func (m *NoteModel) askPassword() tea.Cmd {
	m.phase = notePhasePassword
	m.password.SetValue("")
	m.errMsg = ""
	return m.password.Focus()
}

// lock drops the plaintext and the typed password when leaving the note.
func (m *NoteModel) lock() {
	m.secret = ""
	m.password.SetValue("")
	m.editor.SetValue("")
	m.editor.Blur()
	m.status = ""
	m.errMsg = ""
	m.saving = false
}

func (m *NoteModel) cmdOpen(password string, remember bool) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	noteID := m.noteID

	return func() tea.Msg {
		return noteOpenedMsg{res: vault.Open(ctx, noteID, password, remember)}
	}
}

func (m *NoteModel) cmdSave(plaintext string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	noteID := m.noteID
	password, remember := m.secret, m.remember

	return func() tea.Msg {
		res := vault.Save(ctx, noteID, plaintext, password, remember)
		if !res.Success {
			return noteSavedMsg{res: models.Result[string]{Flag: res.Flag, Status: res.Status, Err: res.Err}}
		}
		return noteSavedMsg{res: models.OK(noteID)}
	}
}

func (m *NoteModel) cmdCreate(plaintext string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	password, remember := m.secret, m.remember

	return func() tea.Msg {
		return noteSavedMsg{res: vault.Create(ctx, plaintext, password, remember), create: true}
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
