package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/internal/tui"
	"github.com/MKhiriev/go-serble-keeper/internal/workers"
	"github.com/MKhiriev/go-serble-keeper/models"
)

// UI is the part of [tui.TUI] the runtime drives.
type UI interface {
	Run(ctx context.Context, startPage string) error
}

// BackgroundWorkers is the part of [workers.Workers] the runtime drives.
type BackgroundWorkers interface {
	Run()
	Stop()
}

type App struct {
	ctx      context.Context
	services *service.ClientServices
	ui       UI
	workers  BackgroundWorkers
	logger   *logger.Logger
}

var (
	_ BackgroundWorkers = (*workers.Workers)(nil)
	_ UI                = (*tui.TUI)(nil)
	_ Client            = (*App)(nil)
)

func NewApp(ctx context.Context, services *service.ClientServices, ui UI, bgWorkers BackgroundWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{ctx: ctx, services: services, ui: ui, workers: bgWorkers, logger: logger}, nil
}

// Run restores the saved session, starts background workers and blocks in
// the UI. Quitting with ctrl+c is not an error.
func (a *App) Run() error {
	startPage := a.startPage()

	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	err := a.ui.Run(a.ctx, startPage)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startPage skips the login menu when a stored session is still accepted by
// the server. A network failure keeps the session but still shows the menu.
func (a *App) startPage() string {
	res := a.services.Sessions.Restore(a.ctx)
	if res.Success {
		a.logger.Info().Str("func", "App.startPage").Str("username", res.Value.Username).Msg("session restored")
		return tui.StartHome
	}
	if res.Flag != models.FlagUnauthorized {
		a.logger.Warn().Str("func", "App.startPage").Str("flag", string(res.Flag)).Msg("session not restored")
	}
	return tui.StartMenu
}
