// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// formSingleModel renders the single-reaction form: a channel post URL and
// an emoji string. Validation beyond "not empty" belongs to the service.
type formSingleModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newFormSingleModel() formSingleModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://whatsapp.com/channel/<id>/<пост>"
	urlInput.Width = 50
	urlInput.Focus()

	emojiInput := textinput.New()
	emojiInput.Placeholder = "👍❤️🔥"
	emojiInput.Width = 50

	return formSingleModel{inputs: []textinput.Model{urlInput, emojiInput}}
}

func (m *formSingleModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formSingleModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formSingleModel) View() string {
	var b strings.Builder
	b.WriteString("Поле   │ Значение\n")
	b.WriteString("───────┼──────────────────────────────────────────────────\n")
	b.WriteString("Ссылка │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Эмодзи │ [")
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

	return renderPage("ОТПРАВКА РЕАКЦИИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: отправить")
}
