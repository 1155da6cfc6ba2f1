package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "1.2.3"},
		"auth": {
			"token_sign_key": "secret",
			"token_issuer": "webdev-forum",
			"token_duration": "24h",
			"max_failed_logins": 5,
			"lockout_duration": "15m"
		},
		"storage": {"db": {"dsn": "postgres://localhost/forum"}},
		"server": {"http_address": ":8080", "request_timeout": "30s"},
		"workers": {"prune_interval": "1h", "attempt_retention": "720h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 5, cfg.Auth.MaxFailedLogins)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutDuration)
	assert.Equal(t, "postgres://localhost/forum", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Workers.PruneInterval)
	assert.Equal(t, 720*time.Hour, cfg.Workers.AttemptRetention)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth":`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"15m"`, want: 15 * time.Minute},
		{name: "nanosecond number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"fifteen minutes"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
