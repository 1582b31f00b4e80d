package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// formFileModel asks for a path to a JSON array of requests plus the pacing
// delay. The file is read and parsed by the reaction service.
type formFileModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newFormFileModel(defaultDelayMs int) formFileModel {
	path := textinput.New()
	path.Placeholder = "/путь/к/файлу.json"
	path.Width = 50
	path.Focus()

	delay := textinput.New()
	delay.Placeholder = fmt.Sprintf("задержка, мс (по умолчанию %d)", defaultDelayMs)
	delay.CharLimit = 7
	delay.Width = 50

	return formFileModel{inputs: []textinput.Model{path, delay}}
}

func (m *formFileModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formFileModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼──────────────────────────────────────────────────\n")
	b.WriteString("Файл     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Задержка │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Отправка...]\n")
	} else {
		b.WriteString("\n[Отправить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПАКЕТНАЯ ОТПРАВКА ИЗ ФАЙЛА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: отправить")
}
