package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// formURLModel is the side-effect-free link check: nothing is sent anywhere.
type formURLModel struct {
	input  textinput.Model
	errMsg string
}

func newFormURLModel() formURLModel {
	input := textinput.New()
	input.Placeholder = "https://whatsapp.com/channel/<id>/<пост>"
	input.Width = 50
	input.Focus()

	return formURLModel{input: input}
}

func (m formURLModel) View() string {
	var b strings.Builder
	b.WriteString("Ссылка │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПРОВЕРКА ССЫЛКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: проверить")
}
