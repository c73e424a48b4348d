package ingest

import "context"

// WatermarkTracker exposes the durable per-stream cursor. The committer is
// the only writer; the cursor only ever advances to the exact successor of
// its current value.
type WatermarkTracker interface {
	// Get returns the current watermark for the stream. The boolean result
	// is false when the stream has no watermark yet.
	Get(ctx context.Context, stream string) (uint64, bool, error)

	// AdvanceIfContiguous moves the watermark to block only when block is
	// exactly the successor of the current watermark, adopting the first
	// block of a fresh stream as its origin. It returns false, with no state
	// change, when the block is not contiguous.
	AdvanceIfContiguous(ctx context.Context, stream string, block uint64) (bool, error)
}
