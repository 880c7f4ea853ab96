package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("loaded contract", zap.String("source", "v1.json"))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded contract", entry["msg"])
	assert.Equal(t, "v1.json", entry["source"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, &bytes.Buffer{})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewAdapter(zap.New(core))

	a.Debug("compared section", "section", "paths", "changes", 3)
	a.Info("diff complete")
	a.With("source", "v2.json").Warn("contract failed OpenAPI validation", "problem", "missing info")
	a.Error("boom")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "paths", entries[0].ContextMap()["section"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["changes"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, map[string]any{"source": "v2.json", "problem": "missing info"}, entries[2].ContextMap())

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestNewAdapter_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		NewAdapter(nil).With("k", "v").Info("ignored")
	})
}
