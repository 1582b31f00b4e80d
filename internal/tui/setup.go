package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// setupModel is the first-run credential screen. The key is masked the same
// way the service stores it: as an opaque string.
type setupModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
	warning    string
}

func newSetupModel() setupModel {
	input := textinput.New()
	input.Placeholder = "ключ доступа"
	input.CharLimit = 256
	input.Width = 44
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return setupModel{input: input}
}

func (m setupModel) View() string {
	var b strings.Builder
	b.WriteString("Для отправки реакций нужен ключ доступа сервиса.\n\n")
	b.WriteString("Ключ │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Проверка...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

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

	return renderPage("НАСТРОЙКА КЛЮЧА", strings.TrimRight(b.String(), "\n"), "enter: сохранить")
}
