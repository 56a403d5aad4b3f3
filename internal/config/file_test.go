package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"name": "erp", "env": "test"},
		"server": {"http_address": "localhost:9000", "request_timeout": "15s"},
		"storage": {"db": {"dsn": "postgres://db", "max_open_conns": 4}},
		"jwt": {"access_expiry": "1h", "issuer": "iss"},
		"log": {"level": "warn"},
		"telemetry": {"enabled": true, "exporter": "none", "sample_rate": 0.5},
		"redaction": {"extra_keys": ["iban"]}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "erp", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "iss", cfg.JWT.Issuer)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "none", cfg.Telemetry.Exporter)
	assert.Equal(t, 0.5, cfg.Telemetry.SampleRate)
	assert.Equal(t, []string{"iban"}, cfg.Redaction.ExtraKeys)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
app:
  name: erp
server:
  http_address: ":4000"
  request_timeout: 2m
jwt:
  access_expiry: 30m
  audience: apps
telemetry:
  exporter: otlp
  otlp_endpoint: collector:4317
  insecure: true
redaction:
  extra_keys: [iban, tax_id]
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "erp", cfg.App.Name)
	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "apps", cfg.JWT.Audience)
	assert.Equal(t, "collector:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, []string{"iban", "tax_id"}, cfg.Redaction.ExtraKeys)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{name: "malformed json", file: "c.json", content: `{"app":`, contains: "error decoding json configs"},
		{name: "malformed yaml", file: "c.yaml", content: "app: [", contains: "error decoding yaml configs"},
		{name: "bad json duration", file: "c.json", content: `{"server":{"request_timeout":"soon"}}`, contains: "error decoding json configs"},
		{name: "bad yaml duration", file: "c.yaml", content: "jwt:\n  access_expiry: soon\n", contains: "error decoding yaml configs"},
		{name: "unsupported extension", file: "c.toml", content: "", contains: "unsupported config file format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDuration_NumericValues(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(data))
}
