package client

import (
	"context"

	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/service"
	"github.com/MKhiriev/go-channel-reactor/internal/tui"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run restores the session from the persisted settings and enters the menu
// loop. Without a usable credential the setup screen runs first; quitting it
// surfaces [tui.ErrSetupAborted] to the caller.
func (a *App) Run() error {
	ctx := context.Background()

	var statusNote string
	if !a.services.Session.Initialize() {
		a.logger.Info().Msg("no usable credential, starting setup flow")

		note, err := a.tui.SetupFlow(ctx)
		if err != nil {
			return err
		}
		statusNote = note
	}

	return a.tui.MainLoop(ctx, statusNote)
}
