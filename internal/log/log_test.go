package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		level  string
		expect log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewWithWriter(&bytes.Buffer{}, Options{Level: tt.level})
			assert.Equal(t, tt.expect, logger.GetLevel())
		})
	}
}

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Prefix: "tetris", Level: "info"})
	logger.Info("hello", "score", 10)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "tetris")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "score=10")
	assert.NotContains(t, out, "hidden")
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")
	logger := New(Options{Path: path})
	logger.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
