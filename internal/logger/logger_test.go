package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestShortCaller(t *testing.T) {
	path := filepath.Join("home", "me", "albums", "internal", "player", "loader.go")
	assert.Equal(t, filepath.Join("player", "loader.go")+":42", shortCaller(0, path, 42))
	assert.Equal(t, "main.go:7", shortCaller(0, "main.go", 7))
}

func TestInit_WriterJSON(t *testing.T) {
	var buf bytes.Buffer
	closer, err := Init(Config{Level: "info", Session: "abc-123", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	zlog.Debug().Msg("hidden")
	zlog.Info().Str("folder", "rock").Msg("listing fetched")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug entry should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listing fetched", entry["message"])
	assert.Equal(t, "rock", entry["folder"])
	assert.Equal(t, "abc-123", entry["session"])
	assert.Contains(t, entry, "time")
	assert.NotContains(t, entry, "caller")
}

func TestInit_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	closer, err := Init(Config{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	zlog.Debug().Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Contains(t, entry["caller"], "logger_test.go")
	assert.NotContains(t, entry, "session")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "albums.log")

	closer, err := Init(Config{Level: "warn", File: path})
	require.NoError(t, err)

	zlog.Warn().Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInit_RequiresFile(t *testing.T) {
	_, err := Init(Config{Level: "info"})
	assert.Error(t, err)
}
