package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type formExportModel struct {
	input  textinput.Model
	errMsg string
}

func newFormExportModel() formExportModel {
	input := textinput.New()
	input.Placeholder = "/путь/к/экспорту.json"
	input.Width = 50
	input.Focus()

	return formExportModel{input: input}
}

func (m formExportModel) View() string {
	var b strings.Builder
	b.WriteString("Файл │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ЭКСПОРТ ИСТОРИИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: экспортировать")
}
