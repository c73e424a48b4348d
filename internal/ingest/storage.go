package ingest

import (
	"context"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
)

// RecordStore durably persists normalized records. Writes are keyed by
// record identity (block number, transaction hash), so rewriting a block
// overwrites the previous records instead of duplicating them.
type RecordStore interface {
	// WriteBlock stores the block and all of its transactions. The write is
	// idempotent: committing the same block number again replaces the stored
	// block and its transaction set.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	WriteBlock(ctx context.Context, block normalize.Block, txs []normalize.Transaction) error
}
