package service

import (
	"strings"

	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/store"
	"github.com/MKhiriev/go-channel-reactor/models"
)

// defaultHistoryLimit is the display limit applied when the operator does
// not supply one.
const defaultHistoryLimit = 10

type historyService struct {
	history store.HistoryRepository
	logger  *logger.Logger
}

func NewHistoryService(history store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{history: history, logger: logger}
}

func (s *historyService) Recent(limit int) []models.HistoryEntry {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries := s.history.All()
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *historyService) Clear() error {
	return s.history.Clear()
}

func (s *historyService) Export(destinationPath string) error {
	destinationPath = strings.TrimSpace(destinationPath)
	if destinationPath == "" {
		return ErrEmptyExportPath
	}
	return s.history.Export(destinationPath)
}

func (s *historyService) Stats() models.HistoryStats {
	entries := s.history.All()

	stats := models.HistoryStats{
		Total:    len(entries),
		ByStatus: make(map[string]int),
		ByKind:   make(map[string]int),
	}

	var durationSum int64
	for _, entry := range entries {
		stats.ByStatus[entry.Status]++
		stats.ByKind[entry.Kind]++
		if entry.DurationMs != nil {
			stats.WithDuration++
			durationSum += *entry.DurationMs
		}
	}

	// mean only over entries that recorded a duration
	if stats.WithDuration > 0 {
		stats.AvgDurationMs = float64(durationSum) / float64(stats.WithDuration)
	}

	return stats
}
