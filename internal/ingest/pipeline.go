package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/logger"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/x/chflow"
)

// ErrContiguityViolation is returned when the committer reaches a block that
// is neither already covered by the watermark nor its exact successor. It
// signals a requested start ahead of the stream cursor.
var ErrContiguityViolation = errors.New("block is not contiguous with the stream watermark")

// fetchResult carries the outcome of one fetch+normalize task from a worker
// to the committer.
type fetchResult struct {
	number uint64
	block  normalize.Block
	txs    []normalize.Transaction
	err    error
}

// runPipeline executes one pass over [start, end]: it launches the number
// producer and the fetch worker pool, then runs the committer on the calling
// goroutine. Cancellation of the pipeline context tears everything down.
func (s *service) runPipeline(ctx context.Context, req Request, report Report, start, end uint64, concurrency int, resumed bool) (Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numbersCh := make(chan uint64)
	resultsCh := make(chan fetchResult, concurrency)

	// windowCh caps how far the producer may run ahead of the committer, so
	// out-of-order results waiting for a slow block never exceed the worker
	// pool size. The producer acquires a slot per number, the committer
	// releases one per committed block.
	windowCh := make(chan struct{}, concurrency)

	go s.produceNumbers(ctx, numbersCh, windowCh, start, end)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for range concurrency {
		go func() {
			defer wg.Done()
			s.fetchWorker(ctx, numbersCh, resultsCh)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	return s.commit(ctx, req, report, start, end, resumed, resultsCh, windowCh)
}

// produceNumbers feeds the worker pool with every block number of the range
// in ascending order, pacing itself against the commit window. It stops
// early when the context is canceled.
func (s *service) produceNumbers(ctx context.Context, numbersCh chan<- uint64, windowCh chan<- struct{}, start, end uint64) {
	defer close(numbersCh)

	for number := start; number <= end; number++ {
		if ok := chflow.Send(ctx, windowCh, struct{}{}); !ok {
			return
		}
		if ok := chflow.Send(ctx, numbersCh, number); !ok {
			return
		}
	}
}

// fetchWorker pulls block numbers, fetches and normalizes each block, and
// hands the result to the committer. Fetch and normalization failures travel
// inside the result so the committer can account for them in order.
func (s *service) fetchWorker(ctx context.Context, numbersCh <-chan uint64, resultsCh chan<- fetchResult) {
	for {
		number, ok := chflow.Receive(ctx, numbersCh)
		if !ok {
			return
		}

		result := fetchResult{number: number}

		raw, err := s.fetcher.FetchBlock(ctx, number)
		if err != nil {
			result.err = fmt.Errorf("fetching block %d: %w", number, err)
		} else if result.block, result.txs, err = normalize.Normalize(raw); err != nil {
			result.err = fmt.Errorf("normalizing block %d: %w", number, err)
		}

		if ok := chflow.Send(ctx, resultsCh, result); !ok {
			return
		}
	}
}

// commit drains fetch results strictly in ascending block number order.
// Results arriving ahead of the next expected number wait in a holding
// buffer whose size is bounded by the concurrency window. Each committed
// block is persisted, fed to the aggregation engine, and only then allowed
// to advance the watermark, so a crash at any point leaves the cursor on a
// fully committed block.
func (s *service) commit(ctx context.Context, req Request, base Report, start, end uint64, resumed bool, resultsCh <-chan fetchResult, windowCh <-chan struct{}) (report Report, err error) {
	report = base

	var (
		pending       = make(map[uint64]fetchResult)
		finalizedDays = types.NewSet[string]()
		recomputeDays = types.NewSet[string]()
		next          = start
		truncated     = false
		frontierDay   = ""
	)

	defer func() {
		days := finalizedDays.ToSlice()
		sort.Strings(days)
		report.DaysFinalized = days
	}()

	// A queued day the frontier has rolled past already has a durable row
	// built from only part of the day. If the pass stops before the
	// end-of-range rebuild below, replace those rows now; otherwise nothing
	// would ever rescan them, since later passes resume past the day.
	defer func() {
		if recomputeDays.Len() == 0 || frontierDay == "" || ctx.Err() != nil {
			return
		}
		if rerr := s.recomputeQueuedDays(ctx, recomputeDays, finalizedDays, frontierDay); rerr != nil {
			if err == nil {
				err = rerr
			} else {
				logger.Error(ctx, "rebuilding partially published days after an aborted pass",
					"stream", req.Stream,
					"error", rerr,
				)
			}
		}
	}()

	for next <= end && !truncated {
		result, ok := chflow.Receive(ctx, resultsCh)
		if !ok {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, fmt.Errorf("ingestion interrupted: %w", ctxErr)
			}
			return report, errors.New("fetch result stream closed before the range completed")
		}
		pending[result.number] = result

		for !truncated {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)

			if res.err != nil {
				if errors.Is(res.err, ErrBlockNotAvailable) {
					logger.Warn(ctx, "range truncated at a block the provider has not produced yet",
						"stream", req.Stream,
						"block.number", next,
					)
					truncated = true
					break
				}

				// A context error in a result means cancellation raced the
				// worker, not that the block is bad.
				if errors.Is(res.err, context.Canceled) || errors.Is(res.err, context.DeadlineExceeded) {
					return report, fmt.Errorf("ingestion interrupted: %w", res.err)
				}

				logger.Error(ctx, "block permanently failed, aborting range with partial watermark",
					"stream", req.Stream,
					"block.number", next,
					"error", res.err,
				)
				report.FailedBlocks = append(report.FailedBlocks, next)
				return report, nil
			}

			if err := s.store.WriteBlock(ctx, res.block, res.txs); err != nil {
				return report, fmt.Errorf("persisting block %d: %w", next, err)
			}

			if req.ForceReprocess {
				recomputeDays.Add(res.block.Date())
			} else {
				days, err := s.aggregator.Consume(ctx, res.block, res.txs)
				finalizedDays.Add(days...)
				if err != nil {
					return report, fmt.Errorf("aggregating block %d: %w", next, err)
				}

				if resumed {
					// The first day of a resumed pass may already hold
					// blocks committed by an earlier pass.
					recomputeDays.Add(res.block.Date())
					resumed = false
				}
			}

			advanced, err := s.watermarks.AdvanceIfContiguous(ctx, req.Stream, next)
			if err != nil {
				return report, fmt.Errorf("advancing watermark to block %d: %w", next, err)
			}

			if advanced {
				report.LastCommittedBlock, report.HasWatermark = next, true
			} else if !report.HasWatermark || next > report.LastCommittedBlock {
				return report, fmt.Errorf("%w: block %d, watermark %d", ErrContiguityViolation, next, report.LastCommittedBlock)
			}

			report.BlocksCommitted++
			frontierDay = res.block.Date()
			next++
			<-windowCh
		}
	}

	// The range completed cleanly: publish the trailing open days, then
	// rebuild every day that cannot be trusted incrementally.
	if !req.ForceReprocess {
		days, err := s.aggregator.FlushOpenDays(ctx)
		finalizedDays.Add(days...)
		if err != nil {
			return report, fmt.Errorf("flushing open days: %w", err)
		}
	}

	if err := s.recomputeQueuedDays(ctx, recomputeDays, finalizedDays, ""); err != nil {
		return report, err
	}

	return report, nil
}

// recomputeQueuedDays rebuilds queued days from persisted records in date
// order, skipping days at or past cutoff. An empty cutoff rebuilds every
// queued day. Rebuilt days move from the queue into finalized.
func (s *service) recomputeQueuedDays(ctx context.Context, queued, finalized types.Set[string], cutoff string) error {
	dates := queued.ToSlice()
	sort.Strings(dates)

	for _, date := range dates {
		if cutoff != "" && date >= cutoff {
			continue
		}

		if err := s.aggregator.RecomputeDay(ctx, date); err != nil {
			return fmt.Errorf("recomputing day %s: %w", date, err)
		}

		finalized.Add(date)
		queued.Delete(date)
	}

	return nil
}
