package config

import (
	"os"
	"path/filepath"
)

// StructuredConfig is the merged ambient runtime configuration: everything
// the process needs before the persisted user settings document is even
// read. Values come from defaults overridden by REACTOR_* environment
// variables.
type StructuredConfig struct {
	Adapter Adapter `envPrefix:"REACTOR_ADAPTER_"`
	Storage Storage `envPrefix:"REACTOR_STORAGE_"`
	Logs    Logs    `envPrefix:"REACTOR_LOG_"`
}

// Adapter holds network settings used by the service client.
type Adapter struct {
	// BaseURL is the automation service endpoint.
	BaseURL string `env:"BASE_URL"`
}

// Storage holds the state directory for the persisted JSON documents.
type Storage struct {
	// Dir is the directory holding config.json and history.json.
	Dir string `env:"DIR"`
}

// Logs holds diagnostic logging settings.
type Logs struct {
	// Level is a zerolog level name ("debug", "info", ...).
	Level string `env:"LEVEL"`
}

func defaults() *StructuredConfig {
	stateDir := ""
	if base, err := os.UserConfigDir(); err == nil {
		stateDir = filepath.Join(base, "channel-reactor")
	}

	return &StructuredConfig{
		Adapter: Adapter{BaseURL: "https://api.channelreact.app"},
		Storage: Storage{Dir: stateDir},
		Logs:    Logs{Level: "debug"},
	}
}
