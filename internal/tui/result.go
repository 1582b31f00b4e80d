package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
)

type resultKind int

const (
	resultNone resultKind = iota
	resultSingle
	resultBatch
	resultURL
)

// resultModel renders the outcome of the last finished operation until the
// operator returns to the menu.
type resultModel struct {
	kind   resultKind
	single models.SingleResult
	batch  models.BatchSummary
	report models.URLReport
	status string
}

// copyValue returns what the copy hotkey puts on the clipboard.
func (m resultModel) copyValue() (string, bool) {
	switch m.kind {
	case resultSingle:
		return m.single.URL, m.single.URL != ""
	case resultURL:
		if m.report.Extracted {
			return m.report.ChannelID + "/" + m.report.PostID, true
		}
		return m.report.URL, m.report.URL != ""
	default:
		return "", false
	}
}

func (m resultModel) View() string {
	switch m.kind {
	case resultSingle:
		return m.viewSingle()
	case resultBatch:
		return m.viewBatch()
	case resultURL:
		return m.viewURL()
	default:
		return renderPage("РЕЗУЛЬТАТ", "", "esc: назад")
	}
}

func (m resultModel) viewSingle() string {
	var b strings.Builder

	b.WriteString("Ссылка: ")
	b.WriteString(m.single.URL)
	b.WriteString("\n")
	b.WriteString("Эмодзи: ")
	b.WriteString(m.single.Emojis)
	b.WriteString("\n")
	b.WriteString("Длительность: ")
	b.WriteString(formatDuration(m.single.DurationMs))
	b.WriteString("\n\n")

	if m.single.Failed {
		b.WriteString("Статус: ошибка\n")
		if m.single.StatusCode != 0 {
			b.WriteString(fmt.Sprintf("Код HTTP: %d\n", m.single.StatusCode))
		}
		b.WriteString("Сообщение: ")
		b.WriteString(humanizeServerUnavailableMessage(m.single.ErrorMessage))
		b.WriteString("\n")
	} else {
		b.WriteString("Статус: успех\n")
		if m.single.Message != "" {
			b.WriteString("Сообщение: ")
			b.WriteString(m.single.Message)
			b.WriteString("\n")
		}
		if m.single.BotResponse != "" {
			b.WriteString("Ответ бота: ")
			b.WriteString(m.single.BotResponse)
			b.WriteString("\n")
		}
		if m.single.Reacts != "" {
			b.WriteString("Реакции: ")
			b.WriteString(m.single.Reacts)
			b.WriteString("\n")
		}
	}

	m.appendWarningAndStatus(&b, m.single.PersistWarning)
	return renderPage("РЕЗУЛЬТАТ ОТПРАВКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ c: копировать ссылку")
}

func (m resultModel) viewBatch() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Отправлено ссылок: %d\n", m.batch.Total))
	if m.batch.Skipped > 0 {
		b.WriteString(fmt.Sprintf("Пропущено невалидных: %d\n", m.batch.Skipped))
	}
	if m.batch.SourceFile != "" {
		b.WriteString("Файл: ")
		b.WriteString(m.batch.SourceFile)
		b.WriteString("\n")
	}
	b.WriteString("Длительность: ")
	b.WriteString(formatDuration(m.batch.DurationMs))
	b.WriteString("\n\n")

	if m.batch.Failed {
		b.WriteString("Статус: ошибка\n")
		b.WriteString("Сообщение: ")
		b.WriteString(humanizeServerUnavailableMessage(m.batch.ErrorMessage))
		b.WriteString("\n")
	} else {
		b.WriteString("Статус: ")
		b.WriteString(statusLabel(m.batch.Status))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Успешно: %d, с ошибкой: %d\n", m.batch.SuccessCount, m.batch.FailedCount))

		if m.batch.FailedCount > 0 {
			b.WriteString("\nОшибки по ссылкам:\n")
			for i, item := range m.batch.Results {
				if item.Success {
					continue
				}
				b.WriteString(fmt.Sprintf("  %d: %s\n", i+1, fitText(item.Error, 60)))
			}
		}
	}

	m.appendWarningAndStatus(&b, m.batch.PersistWarning)
	return renderPage("РЕЗУЛЬТАТ ПАКЕТНОЙ ОТПРАВКИ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func (m resultModel) viewURL() string {
	var b strings.Builder

	b.WriteString("Ссылка: ")
	b.WriteString(m.report.URL)
	b.WriteString("\n\n")

	if m.report.Valid {
		b.WriteString("Формат: корректный\n")
	} else {
		b.WriteString("Формат: некорректный\n")
	}

	if m.report.Extracted {
		b.WriteString("Канал: ")
		b.WriteString(m.report.ChannelID)
		b.WriteString("\n")
		b.WriteString("Пост: ")
		b.WriteString(m.report.PostID)
		b.WriteString("\n")
	}

	m.appendWarningAndStatus(&b, "")
	return renderPage("ПРОВЕРКА ССЫЛКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ c: копировать")
}

func (m resultModel) appendWarningAndStatus(b *strings.Builder, warning string) {
	if warning != "" {
		b.WriteString("\nВнимание: операция не записана в историю: ")
		b.WriteString(warning)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
}

func humanizeServerUnavailableMessage(message string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервис недоступен"
	}
	return message
}
