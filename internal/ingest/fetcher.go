package ingest

import (
	"context"
	"errors"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
)

// ErrBlockNotAvailable is returned by BlockFetcher implementations when the
// requested block number is beyond the chain head and was still absent after
// the retry budget. The committer treats it as a clean truncation of the
// range rather than a failure.
var ErrBlockNotAvailable = errors.New("block not available on the provider")

// BlockFetcher retrieves raw block payloads from a blockchain provider.
type BlockFetcher interface {
	// FetchBlock retrieves the block with the given number, including full
	// transaction objects. Transient provider failures are retried
	// internally; the returned error reflects an exhausted retry budget or a
	// permanently unusable response. A block beyond the current head yields
	// ErrBlockNotAvailable.
	//
	// ctx controls cancellation and deadlines for the underlying calls.
	FetchBlock(ctx context.Context, number uint64) (normalize.RawBlock, error)

	// LatestBlockNumber returns the provider's current head block number.
	LatestBlockNumber(ctx context.Context) (uint64, error)
}
