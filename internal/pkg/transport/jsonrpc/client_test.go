package jsonrpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}
		assert.NoError(t, resp.Err())
	})

	t.Run("returns typed error when Error field is present", func(t *testing.T) {
		resp := response{
			JsonRPC: "2.0",
			Error:   &ProviderError{Code: -32601, Message: "method not found"},
		}

		err := resp.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, -32601, provErr.Code)
		assert.Equal(t, "method not found", provErr.Message)
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("successful response with result", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "2.0", req["jsonrpc"])
			assert.Equal(t, "eth_blockNumber", req["method"])
			assert.NotEmpty(t, req["id"])

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  "0x10",
				"id":      req["id"],
			})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		result, err := c.Fetch(t.Context(), "eth_blockNumber")
		require.NoError(t, err)
		assert.JSONEq(t, `"0x10"`, string(result))
	})

	t.Run("passes parameters through", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []any{"0x64", true}, req["params"])

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  map[string]any{"number": "0x64"},
				"id":      req["id"],
			})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "eth_getBlockByNumber", "0x64", true)
		require.NoError(t, err)
	})

	t.Run("null result is returned verbatim", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","result":null,"id":"1"}`))
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		result, err := c.Fetch(t.Context(), "eth_getBlockByNumber", "0xffffffff", true)
		require.NoError(t, err)
		assert.Equal(t, "null", string(result))
	})

	t.Run("provider error is surfaced", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32005,"message":"rate limited"},"id":"1"}`))
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "eth_blockNumber")
		require.Error(t, err)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, -32005, provErr.Code)
	})

	t.Run("malformed body fails decoding", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "eth_blockNumber")
		assert.Error(t, err)
	})
}
