package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("receives a value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 7

		v, ok := Receive(t.Context(), ch)
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("reports closed channel", func(t *testing.T) {
		ch := make(chan int)
		close(ch)

		_, ok := Receive(t.Context(), ch)
		assert.False(t, ok)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ch := make(chan int)
		_, ok := Receive(ctx, ch)
		assert.False(t, ok)
	})
}

func TestSend(t *testing.T) {
	t.Run("sends a value", func(t *testing.T) {
		ch := make(chan string, 1)

		ok := Send(t.Context(), ch, "hello")
		assert.True(t, ok)
		assert.Equal(t, "hello", <-ch)
	})

	t.Run("honors context cancellation on a full channel", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		ch := make(chan string) // unbuffered, no receiver
		ok := Send(ctx, ch, "dropped")
		assert.False(t, ok)
	})
}
