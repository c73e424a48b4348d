package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("rejects an unknown level", func(t *testing.T) {
		err := Init(WithLevel("not-a-level"))
		assert.Error(t, err)
	})

	t.Run("initializes with a valid level", func(t *testing.T) {
		require.NoError(t, Init(WithLevel("error")))
		require.NotNil(t, logger)
	})

	t.Run("init is idempotent", func(t *testing.T) {
		require.NoError(t, Init(WithLevel("error")))
		first := logger

		require.NoError(t, Init(WithLevel("debug")))
		assert.Same(t, first, logger)
	})
}

func TestLogging(t *testing.T) {
	require.NoError(t, Init(WithLevel("error")))

	ctx := t.Context()

	// These must not panic with a configured logger.
	assert.NotPanics(t, func() {
		Debug(ctx, "debug message", "key", "value")
		Info(ctx, "info message")
		Warn(ctx, "warn message", "count", 3)
		Error(ctx, "error message", "error", assert.AnError)
	})
}
