package config

import (
	"fmt"
	"path/filepath"
)

// Fixed file names of the persisted documents inside the state directory.
const (
	settingsFileName = "config.json"
	historyFileName  = "history.json"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the automation service endpoint used by the client.
	BaseURL string
}

// ClientStorage groups the state-file locations of the Persistent Store.
type ClientStorage struct {
	// Dir is the per-user state directory.
	Dir string
	// SettingsFile is the absolute path of the settings document.
	SettingsFile string
	// HistoryFile is the absolute path of the history document.
	HistoryFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Storage contains state-file locations.
	Storage ClientStorage
	// LogLevel is the zerolog level name for the diagnostic log.
	LogLevel string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration (environment over defaults).
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL: cfg.Adapter.BaseURL,
		},
		Storage: ClientStorage{
			Dir:          cfg.Storage.Dir,
			SettingsFile: filepath.Join(cfg.Storage.Dir, settingsFileName),
			HistoryFile:  filepath.Join(cfg.Storage.Dir, historyFileName),
		},
		LogLevel: cfg.Logs.Level,
	}

	return clientCfg, nil
}
