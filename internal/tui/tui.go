package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

// Start pages accepted by [TUI.Run].
const (
	StartMenu = pageMenu
	StartHome = pageHome
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	relay     *StateRelay
	logger    *logger.Logger
}

// New builds the terminal UI. relay must be the one whose hook was installed
// into the passkey ceremony; it may be nil when progress is not wanted.
func New(services *service.ClientServices, buildInfo models.BuildInfo, relay *StateRelay, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, relay: relay, logger: logger}, nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:         NewMenuModel(),
		pageLogin:        NewLoginModel(ctx, t.services.AuthService),
		pagePasskeyLogin: NewPasskeyLoginModel(ctx, t.services.PasskeyService),
		pageHome:         NewHomeModel(ctx, t.services.AuthService),
		pageNotes:        NewNotesModel(ctx, t.services.VaultService),
		pageNote:         NewNoteModel(ctx, t.services.VaultService),
		pageAuthorize:    NewAuthorizeModel(ctx, t.services.AppService),
		pagePasskeys:     NewPasskeysModel(ctx, t.services.PasskeyService),
		pageApps:         NewAppsModel(ctx, t.services.AuthService, t.services.AppService),
		pageAccount:      NewAccountModel(ctx, t.services.AccountService),
		pagePayment:      NewPaymentModel(ctx, t.services.AccountService),
		pageDevApps:      NewDevAppsModel(ctx, t.services.AppService),
		pageTOTP:         NewTOTPModel(ctx, t.services.AccountService),
		pageCheckout:     NewCheckoutModel(ctx, t.services.AccountService, false),
		pageCheckoutAnon: NewCheckoutModel(ctx, t.services.AccountService, true),
	}
}

// Run blocks until the user quits. It returns [ErrUserQuit] for ctrl+c.
func (t *TUI) Run(ctx context.Context, startPage string) error {
	pages := t.pages(ctx)
	if _, ok := pages[startPage]; !ok {
		startPage = StartMenu
	}

	root := NewRootModel(pages, startPage, t.buildInfo, t.services.Sessions, t.relay)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
