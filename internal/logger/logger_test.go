package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"text stderr", Config{Level: "warn", Format: "text", Output: "stderr"}, false},
		{"json stdout", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"empty output defaults to stderr", Config{Level: "info", Format: "text"}, false},
		{"invalid level", Config{Level: "verbose", Format: "text", Output: "stderr"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestNew_FileOutputCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cronsetup.log")

	log, err := New(Config{Level: "info", Format: "text", Output: path})
	require.NoError(t, err)

	log.Info("crontab written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "crontab written")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	require.NoError(t, err)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.With(Field{Key: "job", Value: "scraper"}).
		Error("chmod failed", errors.New("permission denied"), Field{Key: "path", Value: "/srv/app/main.py"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "chmod failed", entry["msg"])
	assert.Equal(t, "scraper", entry["job"])
	assert.Equal(t, "/srv/app/main.py", entry["path"])
	assert.Equal(t, "permission denied", entry["error"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(strings.ToLower(tt.in), func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() {
		log.Error("ignored", errors.New("boom"))
	})
}
