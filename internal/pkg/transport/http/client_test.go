package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		client := NewClient()

		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, client.RetryWaitMin)
		assert.Equal(t, 30*time.Second, client.RetryWaitMax)
		assert.Equal(t, 2, client.RetryMax)
		assert.Nil(t, client.Logger)
	})

	t.Run("applies options", func(t *testing.T) {
		client := NewClient(
			WithTimeout(3*time.Second),
			WithRetryWaitMin(10*time.Millisecond),
			WithRetryWaitMax(50*time.Millisecond),
			WithRetryMax(5),
		)

		assert.Equal(t, 3*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 10*time.Millisecond, client.RetryWaitMin)
		assert.Equal(t, 50*time.Millisecond, client.RetryWaitMax)
		assert.Equal(t, 5, client.RetryMax)
	})

	t.Run("retries on server errors", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(5*time.Millisecond),
			WithRetryMax(3),
		)

		res, err := client.Get(server.URL)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, int32(3), hits.Load())
	})
}
