package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/chainmetrics-io/chainmetrics/internal/dailymetrics"
	"github.com/chainmetrics-io/chainmetrics/internal/ingest"
	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
)

// Compile-time assertions that Repository serves both the committer's record
// store and the aggregation engine's day reader.
var (
	_ ingest.RecordStore     = (*Repository)(nil)
	_ dailymetrics.DayReader = (*Repository)(nil)
)

// WriteBlock implements the ingest.RecordStore interface. The block and its
// transactions go out as two batches keyed by block number and transaction
// hash respectively, so rewriting a block replaces the stored records.
func (r *Repository) WriteBlock(ctx context.Context, block normalize.Block, txs []normalize.Transaction) error {
	const blockInsert = `
INSERT INTO blocks (
	number,
	hash,
	parent_hash,
	miner,
	timestamp,
	block_date,
	gas_limit,
	gas_used,
	size,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, blockInsert)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	if err := batch.Append(
		block.Number,
		block.Hash,
		block.ParentHash,
		block.Miner,
		block.Timestamp,
		block.Timestamp.UTC(),
		block.GasLimit,
		block.GasUsed,
		block.Size,
		uint32(block.TransactionCount),
	); err != nil {
		return fmt.Errorf("append block %d: %w", block.Number, err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Number, err)
	}

	return r.writeTransactions(ctx, block, txs)
}

func (r *Repository) writeTransactions(ctx context.Context, block normalize.Block, txs []normalize.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	const txInsert = `
INSERT INTO transactions (
	hash,
	block_number,
	block_date,
	from_address,
	to_address,
	value_wei,
	gas,
	gas_price_wei,
	max_fee_per_gas_wei,
	max_priority_fee_per_gas_wei,
	input,
	tx_index,
	tx_type
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, txInsert)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err := batch.Append(
			tx.Hash,
			tx.BlockNumber,
			block.Timestamp.UTC(),
			tx.From,
			tx.To,
			tx.Value,
			tx.Gas,
			tx.GasPrice,
			tx.MaxFeePerGas,
			tx.MaxPriorityFeePerGas,
			tx.Input,
			tx.Index,
			tx.Type,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions of block %d: %w", block.Number, err)
	}

	return nil
}

// BlocksByDate implements the dailymetrics.DayReader interface. FINAL forces
// the collapsed ReplacingMergeTree view so a reprocessed block is observed
// only in its latest version.
func (r *Repository) BlocksByDate(ctx context.Context, date string) ([]normalize.Block, error) {
	const query = `
SELECT
	number,
	hash,
	parent_hash,
	miner,
	timestamp,
	gas_limit,
	gas_used,
	size,
	tx_count
FROM blocks FINAL
WHERE block_date = toDate(?)
ORDER BY number`

	rows, err := r.conn.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("query blocks for %s: %w", date, err)
	}
	defer rows.Close()

	var blocks []normalize.Block
	for rows.Next() {
		var (
			block     normalize.Block
			timestamp time.Time
			txCount   uint32
		)

		if err := rows.Scan(
			&block.Number,
			&block.Hash,
			&block.ParentHash,
			&block.Miner,
			&timestamp,
			&block.GasLimit,
			&block.GasUsed,
			&block.Size,
			&txCount,
		); err != nil {
			return nil, fmt.Errorf("scan block for %s: %w", date, err)
		}

		block.Timestamp = timestamp.UTC()
		block.TransactionCount = int(txCount)
		blocks = append(blocks, block)
	}

	return blocks, rows.Err()
}

// TransactionsByDate implements the dailymetrics.DayReader interface.
func (r *Repository) TransactionsByDate(ctx context.Context, date string) ([]normalize.Transaction, error) {
	const query = `
SELECT
	hash,
	block_number,
	from_address,
	to_address,
	value_wei,
	gas,
	gas_price_wei,
	max_fee_per_gas_wei,
	max_priority_fee_per_gas_wei,
	input,
	tx_index,
	tx_type
FROM transactions FINAL
WHERE block_date = toDate(?)
ORDER BY block_number, tx_index`

	rows, err := r.conn.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("query transactions for %s: %w", date, err)
	}
	defer rows.Close()

	var txs []normalize.Transaction
	for rows.Next() {
		var (
			tx    normalize.Transaction
			value big.Int
		)

		if err := rows.Scan(
			&tx.Hash,
			&tx.BlockNumber,
			&tx.From,
			&tx.To,
			&value,
			&tx.Gas,
			&tx.GasPrice,
			&tx.MaxFeePerGas,
			&tx.MaxPriorityFeePerGas,
			&tx.Input,
			&tx.Index,
			&tx.Type,
		); err != nil {
			return nil, fmt.Errorf("scan transaction for %s: %w", date, err)
		}

		tx.Value = new(big.Int).Set(&value)
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
