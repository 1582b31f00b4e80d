package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// historyModel shows the newest operations. The limit is asked first, an
// empty value keeps the service default.
type historyModel struct {
	limitInput textinput.Model
	entries    []models.HistoryEntry
	loaded     bool
	errMsg     string
}

func newHistoryModel() historyModel {
	input := textinput.New()
	input.Placeholder = "сколько записей показать (по умолчанию 10)"
	input.CharLimit = 4
	input.Width = 44
	input.Focus()

	return historyModel{limitInput: input}
}

func statusLabel(status string) string {
	switch status {
	case models.StatusSuccess:
		return "успех"
	case models.StatusFailed:
		return "ошибка"
	case models.StatusPartial:
		return "частично"
	default:
		return status
	}
}

func kindLabel(kind string) string {
	switch kind {
	case models.KindSingle:
		return "реакция"
	case models.KindBatch:
		return "пакет"
	case models.KindFile:
		return "файл"
	default:
		return kind
	}
}

func (m historyModel) View() string {
	if !m.loaded {
		var b strings.Builder
		b.WriteString("Лимит │ [")
		b.WriteString(m.limitInput.View())
		b.WriteString("]\n")
		if m.errMsg != "" {
			b.WriteString("\nОшибка: ")
			b.WriteString(m.errMsg)
			b.WriteString("\n")
		}
		return renderPage("ИСТОРИЯ ОПЕРАЦИЙ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: показать")
	}

	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString("История пуста\n")
	} else {
		b.WriteString("Когда             │ Тип     │ Статус   │ Детали\n")
		b.WriteString("──────────────────┼─────────┼──────────┼────────────────────────────\n")
		for _, entry := range m.entries {
			b.WriteString(fmt.Sprintf("%-17s │ %-7s │ %-8s │ %s\n",
				entry.Timestamp.Local().Format("02.01.2006 15:04"),
				kindLabel(entry.Kind),
				statusLabel(entry.Status),
				fitText(entryDetails(entry), 40),
			))
		}
	}

	return renderPage("ИСТОРИЯ ОПЕРАЦИЙ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func entryDetails(entry models.HistoryEntry) string {
	if entry.Kind == models.KindSingle {
		if entry.ErrorMessage != "" {
			return entry.URL + " — " + entry.ErrorMessage
		}
		return entry.URL + " " + entry.Emojis
	}

	details := fmt.Sprintf("ссылок: %d", entry.TotalCount)
	if entry.SuccessCount != nil && entry.FailedCount != nil {
		details += fmt.Sprintf(", успешно: %d, с ошибкой: %d", *entry.SuccessCount, *entry.FailedCount)
	}
	if entry.SourceFile != "" {
		details += ", " + entry.SourceFile
	}
	return details
}
