// Package watermark maintains the durable cursor that records the highest
// contiguously ingested block number per logical stream. The tracker is the
// source of idempotent resumption: re-ingestion of blocks at or below the
// watermark is a no-op, and the cursor never implies a gap even when fetches
// complete out of order.
package watermark

import (
	"context"
	"errors"
)

// ErrNoWatermarkFound is returned by Storage implementations when no
// watermark has been saved yet for the requested stream.
var ErrNoWatermarkFound = errors.New("no watermark found for stream")

// Storage persists and retrieves the watermark for each ingestion stream.
type Storage interface {
	// SaveWatermark records the given block number as the watermark for the
	// specified stream, overwriting any previous value.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	SaveWatermark(ctx context.Context, stream string, block uint64) error

	// LoadWatermark returns the watermark saved for the specified stream.
	// If no watermark exists, it returns ErrNoWatermarkFound.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	LoadWatermark(ctx context.Context, stream string) (uint64, error)
}

// Tracker enforces the contiguity rule on top of a Storage implementation.
// All methods are safe for use from a single committer goroutine; the tracker
// itself holds no in-memory cursor, so independent Tracker instances observe
// the same durable state.
type Tracker struct {
	storage Storage
}

// NewTracker creates a Tracker backed by the given Storage.
func NewTracker(storage Storage) *Tracker {
	return &Tracker{storage: storage}
}

// Get returns the current watermark for the stream. The boolean result is
// false when the stream has no watermark yet.
func (t *Tracker) Get(ctx context.Context, stream string) (uint64, bool, error) {
	current, err := t.storage.LoadWatermark(ctx, stream)
	if err != nil {
		if errors.Is(err, ErrNoWatermarkFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return current, true, nil
}

// AdvanceIfContiguous moves the watermark of the stream to block only when
// block is exactly the successor of the current watermark. For a stream with
// no watermark yet, the first advanced block is adopted as the stream origin.
//
// It returns false, with no state change, when the block is not contiguous:
// either it is at or below the current watermark (already ingested) or it is
// ahead of the next expected number (a predecessor is still outstanding).
func (t *Tracker) AdvanceIfContiguous(ctx context.Context, stream string, block uint64) (bool, error) {
	current, found, err := t.Get(ctx, stream)
	if err != nil {
		return false, err
	}

	if found && block != current+1 {
		return false, nil
	}

	if err := t.storage.SaveWatermark(ctx, stream, block); err != nil {
		return false, err
	}

	return true, nil
}
