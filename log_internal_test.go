package notheme

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithoutLogger(t *testing.T) {
	t.Parallel()

	tests := map[string]context.Context{
		"none":       context.Background(),
		"nil-logger": LoggingContext(context.Background(), nil),
	}
	for name, ctx := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := logger(ctx)
			assert.Equal(t, slog.DiscardHandler, l.Handler())
			assert.False(t, l.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(nil, nil))
	assert.Same(t, l, logger(LoggingContext(context.Background(), l)))
}
