// Package ethereum implements the ingest.BlockFetcher interface for
// Ethereum-compatible nodes using a JSON-RPC client. Every provider call is
// paced by a rate limiter tuned to the provider's quota and retried with
// exponential backoff and jitter.
package ethereum

import (
	"go.uber.org/ratelimit"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/resilience/retry"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/transport/jsonrpc"
)

// defaultRequestsPerSecond paces provider calls below the free-tier quota of
// the common hosted providers.
const defaultRequestsPerSecond = 10

// client implements the ingest.BlockFetcher interface for Ethereum-based
// networks. It communicates with a node via a JSON-RPC client shared by all
// fetch workers, so the rate limiter bounds the aggregate request rate.
type client struct {
	conn    jsonrpc.Client    // underlying JSON-RPC client
	limiter ratelimit.Limiter // paces calls across all workers
	retrier retry.Retry       // backoff policy for transient provider failures
}

// Ensure client implements the ingest.BlockFetcher interface at compile time.
var _ ingest.BlockFetcher = (*client)(nil)

// Option customizes the Ethereum client.
type Option func(*client)

// WithRequestsPerSecond bounds the aggregate provider request rate. Values
// below one are ignored.
func WithRequestsPerSecond(n int) Option {
	return func(c *client) {
		if n > 0 {
			c.limiter = ratelimit.New(n)
		}
	}
}

// WithRetry tunes the retry policy for provider calls (attempts, delays,
// jitter). The client's own rules about which errors are retryable are
// preserved regardless of the given options.
func WithRetry(opts ...retry.Option) Option {
	return func(c *client) {
		c.retrier = newRetrier(opts...)
	}
}

// newRetrier builds the retry policy, keeping the retryability predicate
// after any user options so it cannot be overridden.
func newRetrier(opts ...retry.Option) retry.Retry {
	opts = append(opts, retry.WithRetryIf(isRetryableFetchError))
	return retry.New(opts...)
}

// NewClient creates an Ethereum client on top of the given JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:    conn,
		limiter: ratelimit.New(defaultRequestsPerSecond),
		retrier: newRetrier(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
