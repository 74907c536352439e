package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so no stray config.yaml is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.EnableCORS)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 256, cfg.Server.CacheSize)
	assert.Equal(t, "data/lexicon.json", cfg.Lexicon.Path)
	assert.Equal(t, 5*time.Second, cfg.Alert.Twilio.Timeout)
	assert.Empty(t, cfg.Alert.Contacts)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
  enable_cors: false
  cache_size: 16
lexicon:
  path: /opt/kiddoo/lexicon.json
alert:
  twilio:
    account_sid: AC123
    auth_token: secret
    from_number: "+15550999"
    timeout: 2s
  contacts:
    - name: Alice
      phone: "+15550100"
    - name: Bob
      phone: "+15550101"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.False(t, cfg.Server.EnableCORS)
	assert.Equal(t, 16, cfg.Server.CacheSize)
	assert.Equal(t, "/opt/kiddoo/lexicon.json", cfg.Lexicon.Path)
	assert.Equal(t, "AC123", cfg.Alert.Twilio.AccountSID)
	assert.Equal(t, 2*time.Second, cfg.Alert.Twilio.Timeout)
	require.Len(t, cfg.Alert.Contacts, 2)
	assert.Equal(t, "Alice", cfg.Alert.Contacts[0].Name)
	assert.Equal(t, "+15550101", cfg.Alert.Contacts[1].Phone)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
