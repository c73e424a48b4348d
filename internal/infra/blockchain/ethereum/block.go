package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"
	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"
)

var (
	// ErrMalformedResponse indicates that the provider returned a payload
	// that does not decode as the expected block structure. Retrying would
	// yield the same payload, so the error is surfaced immediately.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrFetchExhausted indicates that a provider call kept failing until
	// the retry budget ran out.
	ErrFetchExhausted = errors.New("retry budget exhausted")
)

// isRetryableFetchError reports whether a provider failure is worth another
// attempt. Malformed payloads are deterministic and never retried; a block
// the provider has not produced yet is retried in case the head catches up
// within the backoff window.
func isRetryableFetchError(err error) bool {
	return !errors.Is(err, ErrMalformedResponse)
}

// isNullResult reports whether the JSON-RPC result is the literal null,
// which eth_getBlockByNumber returns for block numbers beyond the head.
func isNullResult(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// classifyFetchError maps the outcome of an exhausted retry loop onto the
// error contract of ingest.BlockFetcher.
func classifyFetchError(err error) error {
	switch {
	case errors.Is(err, ingest.ErrBlockNotAvailable),
		errors.Is(err, ErrMalformedResponse),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrFetchExhausted, err)
	}
}

// take blocks until the limiter grants a slot. The limiter is not
// context-aware, so cancellation is checked once the slot is granted rather
// than issuing a call nobody is waiting for.
func (c *client) take(ctx context.Context) error {
	c.limiter.Take()
	return ctx.Err()
}

// FetchBlock implements the ingest.BlockFetcher interface. It retrieves the
// block with the given number including full transaction objects.
func (c *client) FetchBlock(ctx context.Context, number uint64) (normalize.RawBlock, error) {
	var raw normalize.RawBlock

	err := c.retrier.Execute(ctx, func() error {
		if err := c.take(ctx); err != nil {
			return err
		}

		data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", types.HexFromUint64(number), true)
		if err != nil {
			return err
		}

		if isNullResult(data) {
			return fmt.Errorf("%w: block %d", ingest.ErrBlockNotAvailable, number)
		}

		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		return nil
	})
	if err != nil {
		return normalize.RawBlock{}, classifyFetchError(err)
	}

	return raw, nil
}

// LatestBlockNumber implements the ingest.BlockFetcher interface.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var head uint64

	err := c.retrier.Execute(ctx, func() error {
		if err := c.take(ctx); err != nil {
			return err
		}

		data, err := c.conn.Fetch(ctx, "eth_blockNumber")
		if err != nil {
			return err
		}

		var number types.Hex
		if err := json.Unmarshal(data, &number); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		head, err = number.Uint64()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		return nil
	})
	if err != nil {
		return 0, classifyFetchError(err)
	}

	return head, nil
}
