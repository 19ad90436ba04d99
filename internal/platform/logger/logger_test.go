package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	log, err := Setup("debug")
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	log, err = Setup("warn")
	require.NoError(t, err)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))

	_, err = Setup("verbose")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	base := slog.Default()
	assert.Equal(t, base, FromContext(context.Background()))

	attached := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), attached)
	assert.Equal(t, attached, FromContext(ctx))
	assert.Equal(t, attached, FromContextOrDefault(ctx, base))

	fallback := slog.Default().With(slog.String("component", "fallback"))
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
