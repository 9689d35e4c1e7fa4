package tui

// confirmModel is a y/n prompt drawn over a list page before a destructive
// action. An empty verb means "Удалить".
type confirmModel struct {
	verb    string
	message string
}

func (m confirmModel) View() string {
	verb := m.verb
	if verb == "" {
		verb = "Удалить"
	}
	content := verb + " \"" + m.message + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
