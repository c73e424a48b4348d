package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		r := New(WithDelay(time.Millisecond), WithMaxJitter(0))

		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		r := New(WithAttempts(5), WithDelay(time.Millisecond), WithMaxJitter(0))

		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary failure")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		r := New(WithAttempts(3), WithDelay(time.Millisecond), WithMaxJitter(0))

		wantErr := errors.New("persistent failure")
		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		fatal := errors.New("fatal")
		r := New(
			WithAttempts(5),
			WithDelay(time.Millisecond),
			WithMaxJitter(0),
			WithRetryIf(func(err error) bool { return !errors.Is(err, fatal) }),
		)

		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		r := New(WithAttempts(10), WithDelay(50*time.Millisecond))

		ctx, cancel := context.WithCancel(t.Context())
		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := r.Execute(ctx, func() error {
			calls++
			return errors.New("still failing")
		})

		assert.Error(t, err)
		assert.Less(t, calls, 10)
	})
}
