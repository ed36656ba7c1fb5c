package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	path := writeConfig(t, "base_url: http://localhost:8080/api/\nstart_page: 3\ntimeout: 10\nmsg_timeout: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	assert.Equal(t, 3, cfg.StartPage)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 5*time.Second, cfg.MessageTimeout())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "start_page: [not, a, number\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://example.test/api")
	path := writeConfig(t, "base_url: http://localhost:8080/api\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api", cfg.BaseURL)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero value",
			in:   Config{},
			want: Config{BaseURL: DefaultBaseURL, StartPage: 1, Timeout: 0, MsgTimeout: 0},
		},
		{
			name: "negative values",
			in:   Config{BaseURL: "  ", StartPage: -2, Timeout: -1, MsgTimeout: -1},
			want: Config{BaseURL: DefaultBaseURL, StartPage: 1, Timeout: 0, MsgTimeout: 3},
		},
		{
			name: "trailing slashes trimmed",
			in:   Config{BaseURL: "http://x/api//", StartPage: 7, Timeout: 2, MsgTimeout: 1},
			want: Config{BaseURL: "http://x/api", StartPage: 7, Timeout: 2, MsgTimeout: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.normalize()
			assert.Equal(t, tt.want, got)
		})
	}
}
