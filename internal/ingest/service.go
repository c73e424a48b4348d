// Package ingest coordinates the ingestion pipeline: a bounded pool of fetch
// workers pulls blocks from the provider, normalization turns payloads into
// canonical records, and a single committer persists records, feeds the
// aggregation engine, and advances the stream watermark strictly in block
// number order. Re-running a range is idempotent, and partial failures leave
// the watermark on the last contiguously committed block.
package ingest

import (
	"context"
	"fmt"

	"github.com/chainmetrics-io/chainmetrics/internal/pkg/logger"
)

// defaultConcurrency is the fetch worker pool size used when neither the
// service nor the request sets one.
const defaultConcurrency = 4

// Service is the single entry point for running ingestion passes.
type Service interface {
	// Ingest runs one ingestion pass described by req and returns a report
	// of what was committed. Failures that abort the pass mid-range still
	// return the partial report alongside the error; a block whose fetch
	// permanently failed is reported through Report.FailedBlocks with a nil
	// error.
	Ingest(ctx context.Context, req Request) (Report, error)

	// Watermark returns the current watermark of the stream. The boolean
	// result is false when the stream has never committed a block.
	Watermark(ctx context.Context, stream string) (uint64, bool, error)
}

// service is the default Service implementation.
type service struct {
	fetcher    BlockFetcher
	store      RecordStore
	aggregator Aggregator
	watermarks WatermarkTracker

	concurrency int
}

// Compile-time assertion that service implements the Service interface.
var _ Service = (*service)(nil)

// Option customizes the ingestion service.
type Option func(*service)

// WithDefaultConcurrency sets the fetch worker pool size used when a request
// does not specify one. Values below one are ignored.
func WithDefaultConcurrency(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New creates an ingestion service wiring the block fetcher, the record
// store, the aggregation engine and the watermark tracker together.
func New(fetcher BlockFetcher, store RecordStore, aggregator Aggregator, watermarks WatermarkTracker, opts ...Option) *service {
	s := &service{
		fetcher:     fetcher,
		store:       store,
		aggregator:  aggregator,
		watermarks:  watermarks,
		concurrency: defaultConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ingest implements the Service interface.
func (s *service) Ingest(ctx context.Context, req Request) (Report, error) {
	report := Report{Stream: req.Stream}

	if err := req.validate(); err != nil {
		return report, err
	}

	end := req.EndBlock
	if end == 0 {
		head, err := s.fetcher.LatestBlockNumber(ctx)
		if err != nil {
			return report, fmt.Errorf("resolving head block: %w", err)
		}
		end = head
	}

	if end < req.StartBlock {
		return report, fmt.Errorf("%w: head block %d precedes start block %d", ErrInvalidRange, end, req.StartBlock)
	}

	current, found, err := s.watermarks.Get(ctx, req.Stream)
	if err != nil {
		return report, fmt.Errorf("loading watermark: %w", err)
	}
	report.LastCommittedBlock, report.HasWatermark = current, found

	start := req.StartBlock
	if found && !req.ForceReprocess && start <= current {
		start = current + 1
	}

	if start > end {
		logger.Info(ctx, "nothing to ingest, range already covered by watermark",
			"stream", req.Stream,
			"watermark", current,
			"range.end", end,
		)
		return report, nil
	}

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = s.concurrency
	}

	logger.Info(ctx, "starting ingestion pass",
		"stream", req.Stream,
		"range.start", start,
		"range.end", end,
		"concurrency", concurrency,
		"force", req.ForceReprocess,
	)

	// A resumed pass may pick up a day that an earlier pass already fed
	// blocks into, so that day must be rebuilt from storage at the end
	// instead of trusting the incremental accumulator.
	resumed := found && !req.ForceReprocess

	report, err = s.runPipeline(ctx, req, report, start, end, concurrency, resumed)
	if err != nil {
		return report, err
	}

	logger.Info(ctx, "ingestion pass finished",
		"stream", req.Stream,
		"blocks.committed", report.BlocksCommitted,
		"blocks.failed", report.FailedBlocks,
		"days.finalized", report.DaysFinalized,
	)
	return report, nil
}

// Watermark implements the Service interface.
func (s *service) Watermark(ctx context.Context, stream string) (uint64, bool, error) {
	return s.watermarks.Get(ctx, stream)
}
