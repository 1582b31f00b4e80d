package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("REACTOR_ADAPTER_BASE_URL", "http://localhost:9090")
	t.Setenv("REACTOR_LOG_LEVEL", "warn")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.Adapter.BaseURL)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Empty(t, cfg.Storage.Dir)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Empty(t, cfg.Storage.Dir)
}
