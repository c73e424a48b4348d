package clickhouse

import (
	"context"
	"fmt"

	"github.com/chainmetrics-io/chainmetrics/internal/dailymetrics"
)

// Compile-time assertion that Repository persists finalized metric rows.
var _ dailymetrics.MetricWriter = (*Repository)(nil)

// WriteDailyMetrics implements the dailymetrics.MetricWriter interface.
// Rows share the date as their sorting key, so recomputing a day overwrites
// the previously published row.
func (r *Repository) WriteDailyMetrics(ctx context.Context, row dailymetrics.MetricRow) error {
	const query = `
INSERT INTO daily_metrics (
	date,
	block_count,
	transaction_count,
	total_eth_transferred_wei,
	total_eth_transferred,
	avg_gas_price_wei,
	top_miner,
	top_miner_block_share,
	largest_tx_hash,
	largest_tx_value_wei,
	largest_tx_value_eth,
	tx_count_by_type,
	total_gas_used,
	active_wallet_count,
	new_contracts_deployed,
	avg_tx_per_address,
	avg_tx_value_wei
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare daily metrics batch: %w", err)
	}

	if err := batch.Append(
		row.Date,
		row.BlockCount,
		row.TransactionCount,
		row.TotalEthTransferredWei,
		row.TotalEthTransferred,
		row.AvgGasPriceWei,
		row.TopMiner,
		row.TopMinerBlockShare,
		row.LargestTxHash,
		row.LargestTxValueWei,
		row.LargestTxValueEth,
		row.TxCountByType,
		row.TotalGasUsed,
		row.ActiveWalletCount,
		row.NewContractsDeployed,
		row.AvgTxPerAddress,
		row.AvgTxValueWei,
	); err != nil {
		return fmt.Errorf("append daily metrics for %s: %w", row.Date, err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert daily metrics for %s: %w", row.Date, err)
	}

	return nil
}
