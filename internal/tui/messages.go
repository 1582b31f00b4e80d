package tui

import (
	"time"

	"github.com/MKhiriev/go-channel-reactor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type setupDoneMsg struct {
	warning string
	err     error
}

type singleDoneMsg struct {
	result models.SingleResult
	err    error
}

type batchDoneMsg struct {
	summary models.BatchSummary
	err     error
}

type settingsSavedMsg struct {
	warning string
	err     error
}

type clearDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
