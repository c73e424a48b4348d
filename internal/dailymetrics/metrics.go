package dailymetrics

import (
	"math/big"

	"github.com/chainmetrics-io/chainmetrics/internal/normalize"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"
)

// weiPerEth is the conversion factor between wei and ETH (10^18).
var weiPerEth = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// MetricRow is the finalized, immutable set of metrics published for one UTC
// calendar day. Exact quantities (totals, the largest transfer) are kept in
// wei as arbitrary-precision integers; averages, shares and ETH-denominated
// views are derived floats.
type MetricRow struct {
	Date                   string            // UTC calendar date, YYYY-MM-DD
	BlockCount             uint64            // blocks committed for the day
	TransactionCount       uint64            // transactions across all blocks
	TotalEthTransferredWei *big.Int          // sum of transaction values, wei
	TotalEthTransferred    float64           // same sum denominated in ETH
	AvgGasPriceWei         float64           // mean gas price over transactions that carry one
	TopMiner               string            // address that produced the most blocks
	TopMinerBlockShare     float64           // topMinerBlocks / blockCount, in (0, 1]
	LargestTxHash          string            // hash of the highest-value transaction
	LargestTxValueWei      *big.Int          // value of that transaction, wei
	LargestTxValueEth      float64           // same value denominated in ETH
	TxCountByType          map[uint8]uint64  // transaction tally per type byte
	TotalGasUsed           uint64            // sum of block-level gas used
	ActiveWalletCount      uint64            // distinct sender and recipient addresses
	NewContractsDeployed   uint64            // transactions with no recipient address
	AvgTxPerAddress        float64           // transactionCount / activeWalletCount
	AvgTxValueWei          float64           // mean transaction value, wei
}

// accumulator holds the running totals for one open day. It is mutated only
// by the single committer feeding the engine, so it carries no locking.
type accumulator struct {
	date string

	blockCount    uint64
	txCount       uint64
	ethWei        *big.Int
	gasUsed       uint64
	gasPriceSum   *big.Int
	gasPriceCount uint64

	minerBlocks   map[string]uint64
	topMiner      string
	topMinerCount uint64

	txTypeCounts    map[uint8]uint64
	activeAddresses types.Set[string]

	largestTxValue *big.Int
	largestTxHash  string

	newContracts uint64
}

func newAccumulator(date string) *accumulator {
	return &accumulator{
		date:            date,
		ethWei:          new(big.Int),
		gasPriceSum:     new(big.Int),
		minerBlocks:     make(map[string]uint64),
		txTypeCounts:    make(map[uint8]uint64),
		activeAddresses: types.NewSet[string](),
		largestTxValue:  new(big.Int),
	}
}

// addBlock folds one committed block into the running totals. The top miner is
// replaced only when a tally strictly exceeds the current maximum, so the
// miner that reached the count first wins ties.
func (a *accumulator) addBlock(block normalize.Block) {
	a.blockCount++
	a.gasUsed += block.GasUsed

	a.minerBlocks[block.Miner]++
	if a.minerBlocks[block.Miner] > a.topMinerCount {
		a.topMiner = block.Miner
		a.topMinerCount = a.minerBlocks[block.Miner]
	}
}

// addTransaction folds one transaction into the running totals. Transactions
// arrive in block order with their intra-block order preserved, so the first
// transaction to reach the maximum value wins ties for the largest transfer.
func (a *accumulator) addTransaction(tx normalize.Transaction) {
	a.txCount++
	a.ethWei.Add(a.ethWei, tx.Value)

	if tx.GasPrice != nil {
		a.gasPriceSum.Add(a.gasPriceSum, tx.GasPrice)
		a.gasPriceCount++
	}

	a.txTypeCounts[tx.Type]++

	a.activeAddresses.Add(tx.From)
	if tx.IsContractCreation() {
		a.newContracts++
	} else {
		a.activeAddresses.Add(tx.To)
	}

	if tx.Value.Cmp(a.largestTxValue) > 0 {
		a.largestTxValue = new(big.Int).Set(tx.Value)
		a.largestTxHash = tx.Hash
	}
}

// finalize derives the published metric row from the running totals. The
// accumulator must not be reused afterwards.
func (a *accumulator) finalize() MetricRow {
	row := MetricRow{
		Date:                   a.date,
		BlockCount:             a.blockCount,
		TransactionCount:       a.txCount,
		TotalEthTransferredWei: a.ethWei,
		TotalEthTransferred:    weiToEth(a.ethWei),
		TopMiner:               a.topMiner,
		LargestTxHash:          a.largestTxHash,
		LargestTxValueWei:      a.largestTxValue,
		LargestTxValueEth:      weiToEth(a.largestTxValue),
		TxCountByType:          a.txTypeCounts,
		TotalGasUsed:           a.gasUsed,
		ActiveWalletCount:      uint64(a.activeAddresses.Len()),
		NewContractsDeployed:   a.newContracts,
	}

	if a.blockCount > 0 {
		row.TopMinerBlockShare = float64(a.topMinerCount) / float64(a.blockCount)
	}

	if a.gasPriceCount > 0 {
		row.AvgGasPriceWei = bigRatio(a.gasPriceSum, a.gasPriceCount)
	}

	if a.txCount > 0 {
		row.AvgTxValueWei = bigRatio(a.ethWei, a.txCount)
	}

	if n := a.activeAddresses.Len(); n > 0 {
		row.AvgTxPerAddress = float64(a.txCount) / float64(n)
	}

	return row
}

// weiToEth converts a wei quantity to its ETH-denominated float view.
func weiToEth(wei *big.Int) float64 {
	eth, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEth).Float64()
	return eth
}

// bigRatio divides an arbitrary-precision sum by a count, as a float.
func bigRatio(sum *big.Int, count uint64) float64 {
	ratio, _ := new(big.Float).Quo(
		new(big.Float).SetInt(sum),
		new(big.Float).SetUint64(count),
	).Float64()
	return ratio
}
