package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvLogLevel, "")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/albums.log",
			expected: filepath.Join(home, "logs", "albums.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/albums.log",
			expected: "/var/log/albums.log",
		},
		{
			name:     "relative path unchanged",
			input:    "albums.log",
			expected: "albums.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under %s/", paths[0], appName)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `server_url = "http://localhost:8000/"`)

	cfg, err := load([]string{path}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, "/albums/", cfg.AlbumsPath)
	assert.Equal(t, []string{".mp3"}, cfg.Extensions)
	assert.Empty(t, cfg.Folders)
	assert.Equal(t, "unicode", cfg.Icons)
	assert.InDelta(t, 1.0, cfg.InitialVolume(), 1e-9)
	assert.Equal(t, "stop", cfg.OnTrackEnd)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	limit, err := cfg.TrackSizeLimit()
	require.NoError(t, err)
	assert.Equal(t, int64(512<<20), limit)
	assert.True(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.MPRISEnabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_AllFields(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
server_url = "https://music.example.com"
albums_path = "/music/"
extensions = [".mp3", ".flac"]
folders = ["rock", "jazz"]
icons = "nerd"
volume = 0.0
on_track_end = "advance"
request_timeout = "3s"
max_track_size = "64 MiB"
notifications = false
mpris = false

[log]
level = "DEBUG"
file = "/tmp/albums-test.log"
`)

	cfg, err := load([]string{path}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "https://music.example.com", cfg.ServerURL)
	assert.Equal(t, "/music/", cfg.AlbumsPath)
	assert.Equal(t, []string{".mp3", ".flac"}, cfg.Extensions)
	assert.Equal(t, []string{"rock", "jazz"}, cfg.Folders)
	assert.Equal(t, "nerd", cfg.Icons)
	assert.InDelta(t, 0.0, cfg.InitialVolume(), 1e-9, "explicit zero volume must survive defaults")
	assert.Equal(t, "advance", cfg.OnTrackEnd)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	limit, err := cfg.TrackSizeLimit()
	require.NoError(t, err)
	assert.Equal(t, int64(64<<20), limit)
	assert.False(t, cfg.NotificationsEnabled())
	assert.False(t, cfg.MPRISEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)

	logFile, err := cfg.LogFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/albums-test.log", logFile)
}

func TestLoad_Priority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.toml", `
server_url = "http://global:8000"
icons = "nerd"
`)
	local := writeConfig(t, dir, "local.toml", `server_url = "http://local:8000"`)
	explicit := writeConfig(t, dir, "explicit.toml", `icons = "none"`)

	cfg, err := load([]string{global, local}, Options{File: explicit})
	require.NoError(t, err)

	assert.Equal(t, "http://local:8000", cfg.ServerURL)
	assert.Equal(t, "none", cfg.Icons)
}

func TestLoad_MissingFilesSkipped(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := load([]string{filepath.Join(dir, "nope.toml")}, Options{ServerURL: "http://h:1"})
	require.NoError(t, err)
	assert.Equal(t, "http://h:1", cfg.ServerURL)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	_, err := load(nil, Options{File: filepath.Join(t.TempDir(), "missing.toml"), ServerURL: "http://h"})
	assert.Error(t, err)
}

func TestLoad_EnvAndOptions(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
server_url = "http://file:8000"
[log]
level = "warn"
`)

	t.Setenv(EnvServerURL, "http://env:8000")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := load([]string{path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "http://env:8000", cfg.ServerURL)
	assert.Equal(t, "error", cfg.Log.Level)

	cfg, err = load([]string{path}, Options{ServerURL: "http://flag:8000", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:8000", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing server", `icons = "nerd"`},
		{"bad server url", `server_url = "not a url"`},
		{"bad icons", "server_url = \"http://h\"\nicons = \"emoji\""},
		{"volume too high", "server_url = \"http://h\"\nvolume = 1.5"},
		{"volume negative", "server_url = \"http://h\"\nvolume = -0.1"},
		{"bad end policy", "server_url = \"http://h\"\non_track_end = \"shuffle\""},
		{"extension without dot", "server_url = \"http://h\"\nextensions = [\"mp3\"]"},
		{"bad track size", "server_url = \"http://h\"\nmax_track_size = \"lots\""},
		{"zero track size", "server_url = \"http://h\"\nmax_track_size = \"0 B\""},
		{"bad log level", "server_url = \"http://h\"\n[log]\nlevel = \"trace\""},
		{"invalid toml", `server_url = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			_, err := load([]string{path}, Options{})
			assert.Error(t, err)
		})
	}
}

func TestAccessors_NilPointers(t *testing.T) {
	var cfg Config

	assert.InDelta(t, 1.0, cfg.InitialVolume(), 1e-9)
	assert.True(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.MPRISEnabled())
}
