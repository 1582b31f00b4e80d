package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/service"
	"github.com/MKhiriev/go-channel-reactor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	storage   config.ClientStorage
}

func New(services *service.Services, buildInfo models.AppBuildInfo, storage config.ClientStorage, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, storage: storage}, nil
}

// SetupFlow runs the credential screen shown when no usable credential
// exists. It returns [ErrSetupAborted] if the operator quits before a key is
// accepted; the returned note is a non-fatal persistence warning to show on
// the menu.
func (t *TUI) SetupFlow(ctx context.Context) (note string, err error) {
	model := newSetupAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.err != nil {
		return "", result.err
	}
	if !result.setupDone {
		return "", ErrSetupAborted
	}

	return result.setupWarning, nil
}

// MainLoop runs the menu loop until the operator exits. statusNote, when
// non-empty, is shown on the menu once at startup.
func (t *TUI) MainLoop(ctx context.Context, statusNote string) error {
	model := newMainAppModel(ctx, t.services, t.buildInfo, t.storage)
	model.menu.status = statusNote

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	return nil
}
