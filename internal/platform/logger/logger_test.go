package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/devconnect/api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Setup mutates the process default logger, so these tests stay serial.

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		logged   slog.Level
		dropped  slog.Level
	}{
		{name: "debug level", logLevel: "debug", logged: slog.LevelDebug, dropped: slog.LevelDebug - 4},
		{name: "info level", logLevel: "info", logged: slog.LevelInfo, dropped: slog.LevelDebug},
		{name: "warn level", logLevel: "warn", logged: slog.LevelWarn, dropped: slog.LevelInfo},
		{name: "error level", logLevel: "error", logged: slog.LevelError, dropped: slog.LevelWarn},
		{name: "unknown level falls back to info", logLevel: "verbose", logged: slog.LevelInfo, dropped: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 3001, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.logged))
			assert.False(t, log.Enabled(ctx, tt.dropped))

			// Setup installs the logger as the process default
			assert.Equal(t, log, slog.Default())
		})
	}
}

func TestContextCarry(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), attached)
	assert.Equal(t, attached, FromContext(ctx))
	assert.Equal(t, attached, FromContextOrDefault(ctx, nil))

	// Without an attached logger the fallbacks kick in
	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, def, FromContextOrDefault(context.Background(), def))
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}
