// Package dailymetrics maintains incremental per-day metric accumulators fed
// by the ordered block committer, and finalizes each day into an immutable
// metric row exactly once per contiguous pass. Days touched by a forced
// reprocess are never patched incrementally; they are rebuilt from the
// persisted records with RecomputeDay.
package dailymetrics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
)

// ErrNoBlocksForDay indicates that a day recomputation found no persisted
// blocks for the requested date, so there is nothing to rebuild a row from.
var ErrNoBlocksForDay = errors.New("no persisted blocks for the requested day")

type (
	// MetricWriter persists finalized metric rows. Writing the same date twice
	// must overwrite the previous row.
	MetricWriter interface {
		// WriteDailyMetrics stores the finalized row for row.Date.
		WriteDailyMetrics(ctx context.Context, row MetricRow) error
	}

	// DayReader reads back the persisted records of one UTC calendar day. It
	// backs full-day recomputation after a forced reprocess.
	DayReader interface {
		// BlocksByDate returns every persisted block whose timestamp falls on
		// the given date.
		BlocksByDate(ctx context.Context, date string) ([]normalize.Block, error)

		// TransactionsByDate returns every persisted transaction belonging to
		// blocks of the given date.
		TransactionsByDate(ctx context.Context, date string) ([]normalize.Transaction, error)
	}
)

// Engine consumes committed blocks in ascending number order and maintains
// the per-day accumulators derived from them.
type Engine interface {
	// Consume folds one committed block and its transactions into the open
	// accumulator for the block's date. Open days strictly earlier than that
	// date are finalized and their rows persisted. It returns the dates
	// finalized by this call, in ascending order.
	Consume(ctx context.Context, block normalize.Block, txs []normalize.Transaction) ([]string, error)

	// FlushOpenDays finalizes every remaining open day. It is called only
	// after a range completed cleanly; an aborted range leaves its open days
	// unflushed so no partial row is ever published.
	FlushOpenDays(ctx context.Context) ([]string, error)

	// RecomputeDay rebuilds the metric row of one date from the persisted
	// records and overwrites the stored row. Any open accumulator for that
	// date is discarded first.
	RecomputeDay(ctx context.Context, date string) error
}

// engine is the default Engine implementation. It is owned by the single
// committer goroutine and is not safe for concurrent use.
type engine struct {
	writer MetricWriter
	reader DayReader

	open map[string]*accumulator
}

// Compile-time assertion that engine implements the Engine interface.
var _ Engine = (*engine)(nil)

// New creates an aggregation engine that publishes finalized rows through
// writer and rebuilds recomputed days through reader.
func New(writer MetricWriter, reader DayReader) *engine {
	return &engine{
		writer: writer,
		reader: reader,
		open:   make(map[string]*accumulator),
	}
}

// Consume implements the Engine interface.
func (e *engine) Consume(ctx context.Context, block normalize.Block, txs []normalize.Transaction) ([]string, error) {
	date := block.Date()

	finalized, err := e.finalizeBefore(ctx, date)
	if err != nil {
		return finalized, err
	}

	acc, ok := e.open[date]
	if !ok {
		acc = newAccumulator(date)
		e.open[date] = acc
	}

	acc.addBlock(block)
	for _, tx := range txs {
		acc.addTransaction(tx)
	}

	return finalized, nil
}

// FlushOpenDays implements the Engine interface.
func (e *engine) FlushOpenDays(ctx context.Context) ([]string, error) {
	return e.finalizeBefore(ctx, "")
}

// finalizeBefore flushes every open day strictly earlier than cutoff, in
// ascending date order. An empty cutoff flushes everything. A write failure
// stops the sweep with the already flushed dates returned, leaving later days
// open for a retry.
func (e *engine) finalizeBefore(ctx context.Context, cutoff string) ([]string, error) {
	dates := make([]string, 0, len(e.open))
	for date := range e.open {
		if cutoff == "" || date < cutoff {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	finalized := make([]string, 0, len(dates))
	for _, date := range dates {
		row := e.open[date].finalize()
		if err := e.writer.WriteDailyMetrics(ctx, row); err != nil {
			return finalized, fmt.Errorf("flushing metrics for %s: %w", date, err)
		}

		delete(e.open, date)
		finalized = append(finalized, date)
	}

	return finalized, nil
}

// RecomputeDay implements the Engine interface.
func (e *engine) RecomputeDay(ctx context.Context, date string) error {
	delete(e.open, date)

	blocks, err := e.reader.BlocksByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("reading blocks for %s: %w", date, err)
	}

	if len(blocks) == 0 {
		return fmt.Errorf("%w: %s", ErrNoBlocksForDay, date)
	}

	txs, err := e.reader.TransactionsByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("reading transactions for %s: %w", date, err)
	}

	// Storage makes no ordering promise, so restore commit order before
	// replaying. Order decides ties for the top miner and largest transfer.
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Number < blocks[j].Number })
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].BlockNumber != txs[j].BlockNumber {
			return txs[i].BlockNumber < txs[j].BlockNumber
		}
		return txs[i].Index < txs[j].Index
	})

	acc := newAccumulator(date)
	for _, block := range blocks {
		acc.addBlock(block)
	}
	for _, tx := range txs {
		acc.addTransaction(tx)
	}

	if err := e.writer.WriteDailyMetrics(ctx, acc.finalize()); err != nil {
		return fmt.Errorf("writing recomputed metrics for %s: %w", date, err)
	}

	return nil
}
