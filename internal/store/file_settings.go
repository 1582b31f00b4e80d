package store

import (
	"encoding/json"
	"os"

	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/models"
)

type fileSettingsRepository struct {
	path   string
	logger *logger.Logger
}

// NewFileSettingsRepository constructs a [SettingsRepository] backed by the
// JSON document at path.
func NewFileSettingsRepository(path string, logger *logger.Logger) SettingsRepository {
	return &fileSettingsRepository{path: path, logger: logger}
}

// Load implements [SettingsRepository]. Any read or parse failure falls back
// to defaults: the condition is logged but never surfaced, a fresh state
// directory is indistinguishable from a corrupt one from the caller's side.
func (r *fileSettingsRepository) Load() models.Settings {
	settings := models.DefaultSettings()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn().Err(err).Str("path", r.path).Msg("cannot read settings file, using defaults")
		}
		return settings
	}

	if err = json.Unmarshal(raw, &settings); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("cannot parse settings file, using defaults")
		return models.DefaultSettings()
	}

	if settings.TimeoutMs <= 0 {
		settings.TimeoutMs = models.DefaultTimeoutMs
	}
	if settings.DefaultDelayMs < 0 {
		settings.DefaultDelayMs = models.DefaultDelayMs
	}

	return settings
}

// Save implements [SettingsRepository].
func (r *fileSettingsRepository) Save(settings models.Settings) error {
	return writeJSONFile(r.path, settings)
}
