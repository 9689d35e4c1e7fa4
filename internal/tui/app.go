package tui

import (
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const sessionTickInterval = 5 * time.Second

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) sends the user back to the menu when the session disappears
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	sessions  service.SessionManager
	protected map[string]bool
	relay     *StateRelay

	quitByUser bool
	buildInfo  models.BuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. sessions and relay
// may be nil.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.BuildInfo, sessions service.SessionManager, relay *StateRelay) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		sessions:    sessions,
		relay:       relay,
		buildInfo:   buildInfo,
		protected: map[string]bool{
			pageHome:      true,
			pageNotes:     true,
			pageNote:      true,
			pageAuthorize: true,
			pagePasskeys:  true,
			pagePayment:   true,
			pageAccount:   true,
			pageApps:      true,
			pageDevApps:   true,
			pageTOTP:      true,
			pageCheckout:  true,
		},
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.tickSession(), r.relay.wait()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case LoginDone:
		return r.navigate(NavigateTo{Page: pageHome})

	case sessionTickMsg:
		if r.protected[r.currentName] && r.sessions != nil && r.sessions.Get().Token == "" {
			next, cmd := r.navigate(NavigateTo{Page: pageMenu, Payload: menuNotice{text: "Сессия истекла, войдите снова"}})
			return next, tea.Batch(cmd, r.tickSession())
		}
		return r, r.tickSession()

	case ceremonyStateMsg:
		// the relay must be re-armed after every delivered state
		var cmd tea.Cmd
		if r.current != nil {
			r.current, cmd = r.current.Update(msg)
		}
		return r, tea.Batch(cmd, r.relay.wait())
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) tickSession() tea.Cmd {
	if r.sessions == nil {
		return nil
	}
	return tea.Tick(sessionTickInterval, func(time.Time) tea.Msg {
		return sessionTickMsg{}
	})
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
