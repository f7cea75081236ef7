package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()

	SetRawLogLevel("error")
	assert.False(t, GetLogger().Enabled(ctx, slog.LevelInfo))
	SetLogLevel(slog.LevelInfo)
	assert.True(t, GetLogger().Enabled(ctx, slog.LevelInfo))

	assert.False(t, GetInternalLogger().Enabled(ctx, slog.LevelInfo))
	SetInternalLogLevel(slog.LevelDebug)
	t.Cleanup(func() { SetInternalLogLevel(slog.LevelWarn) })
	assert.True(t, GetInternalLogger().Enabled(ctx, slog.LevelDebug))
}
