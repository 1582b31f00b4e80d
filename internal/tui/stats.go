package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
)

type statsModel struct {
	stats models.HistoryStats
}

func (m statsModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Всего операций: %d\n", m.stats.Total))

	if m.stats.Total > 0 {
		b.WriteString("\nПо статусу:\n")
		b.WriteString(fmt.Sprintf("  успех    %d\n", m.stats.ByStatus[models.StatusSuccess]))
		b.WriteString(fmt.Sprintf("  частично %d\n", m.stats.ByStatus[models.StatusPartial]))
		b.WriteString(fmt.Sprintf("  ошибка   %d\n", m.stats.ByStatus[models.StatusFailed]))

		b.WriteString("\nПо типу:\n")
		b.WriteString(fmt.Sprintf("  реакция  %d\n", m.stats.ByKind[models.KindSingle]))
		b.WriteString(fmt.Sprintf("  пакет    %d\n", m.stats.ByKind[models.KindBatch]))
		b.WriteString(fmt.Sprintf("  файл     %d\n", m.stats.ByKind[models.KindFile]))
	}

	if m.stats.WithDuration > 0 {
		b.WriteString(fmt.Sprintf("\nСредняя длительность: %.0f мс (по %d операциям)\n", m.stats.AvgDurationMs, m.stats.WithDuration))
	}

	return renderPage("СТАТИСТИКА", strings.TrimRight(b.String(), "\n"), "esc: назад")
}
