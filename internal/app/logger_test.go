package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level, format string
		enabled       slog.Level
		disabled      slog.Level
		contains      string
	}{
		{level: "debug", format: "text", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1, contains: "app=temples"},
		{level: "warn", format: "json", enabled: slog.LevelWarn, disabled: slog.LevelInfo, contains: `"app":"temples"`},
		{level: "nonsense", format: "", enabled: slog.LevelInfo, disabled: slog.LevelDebug, contains: "app=temples"},
	}

	for _, tc := range tests {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := newLogger(tc.level, tc.format, buf)
			ctx := context.Background()

			assert.True(t, logger.Enabled(ctx, tc.enabled))
			assert.False(t, logger.Enabled(ctx, tc.disabled))

			logger.Log(ctx, tc.enabled, "hello")
			assert.Contains(t, buf.String(), tc.contains)
		})
	}
}
