package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// clearConfirmWord must be typed in full: a single keypress is too easy to
// hit for an irreversible wipe.
const clearConfirmWord = "да"

type confirmClearModel struct {
	input textinput.Model
}

func newConfirmClearModel() confirmClearModel {
	input := textinput.New()
	input.Placeholder = clearConfirmWord
	input.CharLimit = 10
	input.Width = 20
	input.Focus()

	return confirmClearModel{input: input}
}

func (m confirmClearModel) confirmed() bool {
	return strings.EqualFold(strings.TrimSpace(m.input.Value()), clearConfirmWord)
}

func (m confirmClearModel) View() string {
	var b strings.Builder
	b.WriteString("Вся история операций будет удалена без возможности восстановления.\n\n")
	b.WriteString("Введите «")
	b.WriteString(clearConfirmWord)
	b.WriteString("» для подтверждения: [")
	b.WriteString(m.input.View())
	b.WriteString("]")

	return renderPage("ОЧИСТКА ИСТОРИИ", b.String(), "esc: отмена │ enter: подтвердить")
}
