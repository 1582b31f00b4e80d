package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// formSettingsModel edits the two numeric settings. The fields come
// prefilled with the current values so enter without changes is a no-op
// save.
type formSettingsModel struct {
	inputs  []textinput.Model
	focus   int
	errMsg  string
	warning string
}

func newFormSettingsModel(current models.Settings) formSettingsModel {
	timeout := textinput.New()
	timeout.Placeholder = "таймаут, мс"
	timeout.CharLimit = 7
	timeout.Width = 30
	timeout.SetValue(strconv.Itoa(current.TimeoutMs))
	timeout.Focus()

	delay := textinput.New()
	delay.Placeholder = "задержка, мс"
	delay.CharLimit = 7
	delay.Width = 30
	delay.SetValue(strconv.Itoa(current.DefaultDelayMs))

	return formSettingsModel{inputs: []textinput.Model{timeout, delay}}
}

func (m *formSettingsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formSettingsModel) View() string {
	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼──────────────────────────────\n")
	b.WriteString("Таймаут (мс)   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Задержка (мс)  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString("\nВнимание: ")
		b.WriteString(m.warning)
		b.WriteString("\n")
	}

	return renderPage("НАСТРОЙКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}
