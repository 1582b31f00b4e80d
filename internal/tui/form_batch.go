package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type batchStage int

const (
	batchStageParams batchStage = iota
	batchStageItems
)

// formBatchModel collects a batch interactively: first the item count and
// the pacing delay, then one URL/emoji pair per item.
type formBatchModel struct {
	stage batchStage

	paramInputs []textinput.Model
	paramFocus  int

	itemInputs []textinput.Model
	itemFocus  int

	requests []models.ReactionRequest
	total    int
	delayMs  int

	submitting bool
	errMsg     string
}

func newFormBatchModel(defaultDelayMs int) formBatchModel {
	count := textinput.New()
	count.Placeholder = "количество ссылок"
	count.CharLimit = 4
	count.Width = 30
	count.Focus()

	delay := textinput.New()
	delay.Placeholder = fmt.Sprintf("задержка, мс (по умолчанию %d)", defaultDelayMs)
	delay.CharLimit = 7
	delay.Width = 30

	return formBatchModel{
		stage:       batchStageParams,
		paramInputs: []textinput.Model{count, delay},
		delayMs:     defaultDelayMs,
	}
}

func (m *formBatchModel) startItems(total, delayMs int) {
	m.total = total
	m.delayMs = delayMs
	m.requests = m.requests[:0]
	m.stage = batchStageItems
	m.initItemInputs()
}

func (m *formBatchModel) initItemInputs() {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://whatsapp.com/channel/<id>/<пост>"
	urlInput.Width = 50
	urlInput.Focus()

	emojiInput := textinput.New()
	emojiInput.Placeholder = "👍❤️🔥"
	emojiInput.Width = 50

	m.itemInputs = []textinput.Model{urlInput, emojiInput}
	m.itemFocus = 0
}

func (m *formBatchModel) focusNextParam() {
	m.paramInputs[m.paramFocus].Blur()
	m.paramFocus = (m.paramFocus + 1) % len(m.paramInputs)
	m.paramInputs[m.paramFocus].Focus()
}

func (m *formBatchModel) focusNextItem() {
	m.itemInputs[m.itemFocus].Blur()
	m.itemFocus = (m.itemFocus + 1) % len(m.itemInputs)
	m.itemInputs[m.itemFocus].Focus()
}

func (m formBatchModel) View() string {
	switch m.stage {
	case batchStageParams:
		return m.viewParams()
	default:
		return m.viewItems()
	}
}

func (m formBatchModel) viewParams() string {
	var b strings.Builder
	b.WriteString("Поле       │ Значение\n")
	b.WriteString("───────────┼──────────────────────────────────\n")
	b.WriteString("Количество │ [")
	b.WriteString(m.paramInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Задержка   │ [")
	b.WriteString(m.paramInputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПАКЕТНАЯ ОТПРАВКА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: далее")
}

func (m formBatchModel) viewItems() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ссылка %d из %d\n\n", len(m.requests)+1, m.total))
	b.WriteString("Ссылка │ [")
	b.WriteString(m.itemInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Эмодзи │ [")
	b.WriteString(m.itemInputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Отправка...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПАКЕТНАЯ ОТПРАВКА", strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: добавить")
}
