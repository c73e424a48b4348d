package ingest

import (
	"errors"
	"fmt"

	"github.com/chainmetrics-io/chainmetrics/internal/pkg/validator"
)

// ErrInvalidRange is returned when the requested block range is empty or
// inverted, either as given or after head resolution.
var ErrInvalidRange = errors.New("invalid block range")

// Request describes one ingestion pass over a block range.
type Request struct {
	// Stream is the logical ingestion stream whose watermark governs the
	// pass (e.g., "ethereum:mainnet").
	Stream string `validate:"required"`

	// StartBlock is the first block number of the range, inclusive.
	StartBlock uint64

	// EndBlock is the last block number of the range, inclusive. Zero means
	// "up to the provider's current head", resolved once at the start of the
	// pass.
	EndBlock uint64

	// Concurrency bounds the fetch worker pool. Zero falls back to the
	// service default.
	Concurrency int `validate:"gte=0"`

	// ForceReprocess refetches blocks at or below the watermark, overwrites
	// their stored records, and rebuilds the metrics of every touched day
	// from persisted data instead of patching them incrementally.
	ForceReprocess bool
}

// validate checks the request shape. Head resolution happens later, so an
// EndBlock of zero is always acceptable here.
func (r Request) validate() error {
	if err := validator.Validate(r); err != nil {
		return err
	}

	if r.EndBlock != 0 && r.EndBlock < r.StartBlock {
		return fmt.Errorf("%w: end block %d precedes start block %d", ErrInvalidRange, r.EndBlock, r.StartBlock)
	}

	return nil
}

// Report summarizes the outcome of one ingestion pass.
type Report struct {
	// Stream is the ingestion stream the pass ran against.
	Stream string

	// LastCommittedBlock is the watermark after the pass. It is meaningful
	// only when HasWatermark is true.
	LastCommittedBlock uint64

	// HasWatermark is false when the stream still has no watermark, meaning
	// no block has ever been committed for it.
	HasWatermark bool

	// BlocksCommitted counts the blocks durably committed by this pass.
	BlocksCommitted uint64

	// FailedBlocks lists block numbers whose fetch or normalization
	// permanently failed, aborting the pass. It holds at most one entry:
	// the committer stops at the first failure.
	FailedBlocks []uint64

	// DaysFinalized lists the UTC dates whose metric rows were published by
	// this pass, in ascending order.
	DaysFinalized []string
}
