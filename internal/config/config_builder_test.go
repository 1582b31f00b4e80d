package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "https://api.channelreact.app", cfg.Adapter.BaseURL)
	assert.NotEmpty(t, cfg.Storage.Dir)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("REACTOR_ADAPTER_BASE_URL", "https://staging.channelreact.app")
	t.Setenv("REACTOR_STORAGE_DIR", "/tmp/reactor-test-state")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "https://staging.channelreact.app", cfg.Adapter.BaseURL)
	assert.Equal(t, "/tmp/reactor-test-state", cfg.Storage.Dir)
	// fields not overridden keep their defaults
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestBuild_InvalidBaseURL(t *testing.T) {
	t.Setenv("REACTOR_ADAPTER_BASE_URL", "not a url")

	_, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_FilePaths(t *testing.T) {
	t.Setenv("REACTOR_STORAGE_DIR", "/tmp/reactor-state")

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/reactor-state/config.json", cfg.Storage.SettingsFile)
	assert.Equal(t, "/tmp/reactor-state/history.json", cfg.Storage.HistoryFile)
}
