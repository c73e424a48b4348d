package ingest

import (
	"context"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
)

// Aggregator maintains per-day metric state fed strictly in commit order.
// All calls happen on the single committer goroutine.
type Aggregator interface {
	// Consume folds one committed block and its transactions into the open
	// day state, finalizing any day that ended before the block's date. It
	// returns the dates finalized by this call, in ascending order.
	Consume(ctx context.Context, block normalize.Block, txs []normalize.Transaction) ([]string, error)

	// FlushOpenDays finalizes every remaining open day. The committer calls
	// it only after a range completed cleanly.
	FlushOpenDays(ctx context.Context) ([]string, error)

	// RecomputeDay rebuilds the metric row of one date from persisted
	// records, overwriting the stored row. Used after forced reprocessing
	// and for days that were already partially ingested by an earlier pass.
	RecomputeDay(ctx context.Context, date string) error
}
