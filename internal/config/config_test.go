package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "webstart", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EnableProbes)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WEBSTART_HTTP_PORT", "9999")
	t.Setenv("SERVICE_NAME", "inventory-api")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEBSTART_ENABLE_PROBES", "false")
	t.Setenv("TIMEOUT_SHUTDOWN", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.Equal(t, "inventory-api", cfg.ServiceName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.EnableProbes)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.ShutdownTimeout)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("WEBSTART_HTTP_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsEmptyServiceName(t *testing.T) {
	cfg := &Config{
		HTTPPort:    8080,
		ServiceName: "",
		LogLevel:    "info",
	}

	assert.Error(t, cfg.Validate())
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := &Config{HTTPPort: 8081}
	assert.Equal(t, ":8081", cfg.GetHTTPAddr())
}
