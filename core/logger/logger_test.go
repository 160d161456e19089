package logger_test

import (
	"testing"

	"github.com/MoraStok/apareo-con-actualizaciones/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		debug bool
		warn  bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, true, true},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false, true},
		{"WarnConsole", logger.Config{Level: "warn", Format: "console"}, false, true},
		{"EmptyDefaultsToInfo", logger.Config{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warn, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNew_ErrorLevelFiltersInfo(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "error", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	logger.WithRunID(base, "run-1").Info("with id")
	logger.WithRunID(base, "").Info("without id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "run-1", entries[0].ContextMap()["run_id"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}
