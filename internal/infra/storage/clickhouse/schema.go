package clickhouse

import (
	"context"
	"fmt"
)

// schemaStatements holds the DDL for every table the repository touches.
// ReplacingMergeTree collapses rows sharing the same sorting key on merge,
// which gives overwrite-by-key semantics for reprocessed blocks and days;
// readers use FINAL to observe the collapsed view before merges happen.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS blocks (
		number       UInt64,
		hash         String,
		parent_hash  String,
		miner        String,
		timestamp    DateTime('UTC'),
		block_date   Date,
		gas_limit    UInt64,
		gas_used     UInt64,
		size         UInt64,
		tx_count     UInt32
	)
	ENGINE = ReplacingMergeTree
	PARTITION BY toYYYYMM(block_date)
	ORDER BY number`,

	`CREATE TABLE IF NOT EXISTS transactions (
		hash                         String,
		block_number                 UInt64,
		block_date                   Date,
		from_address                 String,
		to_address                   String,
		value_wei                    UInt256,
		gas                          UInt64,
		gas_price_wei                Nullable(UInt256),
		max_fee_per_gas_wei          Nullable(UInt256),
		max_priority_fee_per_gas_wei Nullable(UInt256),
		input                        String,
		tx_index                     UInt32,
		tx_type                      UInt8
	)
	ENGINE = ReplacingMergeTree
	PARTITION BY toYYYYMM(block_date)
	ORDER BY hash`,

	`CREATE TABLE IF NOT EXISTS daily_metrics (
		date                      Date,
		block_count               UInt64,
		transaction_count         UInt64,
		total_eth_transferred_wei UInt256,
		total_eth_transferred     Float64,
		avg_gas_price_wei         Float64,
		top_miner                 String,
		top_miner_block_share     Float64,
		largest_tx_hash           String,
		largest_tx_value_wei      UInt256,
		largest_tx_value_eth      Float64,
		tx_count_by_type          Map(UInt8, UInt64),
		total_gas_used            UInt64,
		active_wallet_count       UInt64,
		new_contracts_deployed    UInt64,
		avg_tx_per_address        Float64,
		avg_tx_value_wei          Float64
	)
	ENGINE = ReplacingMergeTree
	ORDER BY date`,
}

// EnsureSchema creates every table the repository needs if it does not exist
// yet. It is safe to call on every startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, ddl := range schemaStatements {
		if err := r.conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	return nil
}
