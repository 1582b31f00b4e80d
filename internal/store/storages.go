package store

import (
	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
)

// Storages aggregates the client state repositories.
type Storages struct {
	Settings SettingsRepository
	History  HistoryRepository
}

// NewStorages wires the file-backed repositories for the configured state
// locations.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) *Storages {
	return &Storages{
		Settings: NewFileSettingsRepository(cfg.SettingsFile, logger),
		History:  NewFileHistoryRepository(cfg.HistoryFile, logger),
	}
}
