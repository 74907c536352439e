package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, 9090, config.Metrics.PrometheusPort)
	assert.False(t, config.Tracing.Enabled)
	assert.Equal(t, 1.0, config.Tracing.SampleRate)
}

func TestLoadConfig_NonExistent(t *testing.T) {
	config, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
observability:
  logging:
    level: debug
    format: text
  metrics:
    enabled: true
    prometheus_port: 8081
  tracing:
    enabled: true
    sample_rate: 0.5
    service_name: kiddoo-test
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, 8081, config.Metrics.PrometheusPort)
	assert.True(t, config.Tracing.Enabled)
	assert.Equal(t, 0.5, config.Tracing.SampleRate)
	assert.Equal(t, "kiddoo-test", config.Tracing.ServiceName)
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+1***89", MaskPhone("+155501189"))
	assert.Equal(t, "***", MaskPhone("123"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := ContextWithRequestID(t.Context(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
}
