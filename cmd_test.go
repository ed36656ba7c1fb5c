package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkosaurus/multiverse/internal/types"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/character", func(w http.ResponseWriter, r *http.Request) {
		resp := types.CharacterPage{
			Info: types.PageInfo{Count: 826, Pages: 42},
			Results: []types.Character{
				{ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human", Location: types.LocationRef{Name: "Citadel of Ricks"}},
				{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human", Location: types.LocationRef{Name: "Citadel of Ricks"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/character/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(types.Character{
			ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human",
		}))
	})
	mux.HandleFunc("/character/9999", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Character not found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// execute runs the root command with an isolated config and log file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvLogFile, filepath.Join(dir, "multiverse.log"))
	t.Setenv("MULTIVERSE_BASE_URL", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPageCmd(t *testing.T) {
	srv := newAPIServer(t)

	out, err := execute(t, "page", "3", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Rick Sanchez")
	assert.Contains(t, out, "Morty Smith")
	assert.Contains(t, out, "Citadel of Ricks")
	assert.Contains(t, out, "page 3 of 42")
}

func TestPageCmd_InvalidPage(t *testing.T) {
	_, err := execute(t, "page", "three")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse page "three"`)
}

func TestCharacterCmd(t *testing.T) {
	srv := newAPIServer(t)

	out, err := execute(t, "character", "1", "--base-url", srv.URL, "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Rick Sanchez")
}

func TestCharacterCmd_NotFound(t *testing.T) {
	srv := newAPIServer(t)

	_, err := execute(t, "character", "9999", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Equal(t, "character 9999 not found", err.Error())
}

func TestRootCmd_NegativeTimeout(t *testing.T) {
	_, err := execute(t, "page", "--timeout=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "multiverse.log")
	t.Setenv(EnvLogFile, path)
	t.Setenv("DEBUG", "1")

	logger, err := newFileLogger()
	require.NoError(t, err)
	logger.Info("hello", "page", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initialized text file logger")
	assert.Contains(t, string(data), "msg=hello page=2")
}
