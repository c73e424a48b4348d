package normalize

import (
	"math/big"
	"testing"
	"time"

	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawBlock returns a minimal well-formed block carrying two transactions.
func validRawBlock() RawBlock {
	return RawBlock{
		Hash:       "0xblockhash",
		ParentHash: "0xparenthash",
		Miner:      "0xminer",
		Number:     types.Hex("0x64"),       // 100
		Timestamp:  types.Hex("0x6745ab80"), // 2024-11-26T11:05:36Z
		GasLimit:   types.Hex("0x1c9c380"),  // 30,000,000
		GasUsed:    types.Hex("0xf4240"),    // 1,000,000
		Size:       types.Hex("0x400"),
		Transactions: []RawTransaction{
			{
				Hash:             "0xtx0",
				From:             "0xalice",
				To:               "0xbob",
				Value:            types.Hex("0x4563918244f40000"), // 5 ETH
				Gas:              types.Hex("0x5208"),
				GasPrice:         types.Hex("0x3b9aca00"), // 1 gwei
				Input:            "0x",
				TransactionIndex: types.Hex("0x0"),
				Type:             types.Hex("0x0"),
			},
			{
				Hash:                 "0xtx1",
				From:                 "0xcarol",
				To:                   "",
				Value:                types.Hex("0x0"),
				Gas:                  types.Hex("0x186a0"),
				GasPrice:             types.Hex("0x3b9aca00"),
				MaxFeePerGas:         types.Hex("0x77359400"),
				MaxPriorityFeePerGas: types.Hex("0x3b9aca00"),
				Input:                "0x6080604052",
				TransactionIndex:     types.Hex("0x1"),
				Type:                 types.Hex("0x2"),
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	t.Run("produces canonical block and ordered transactions", func(t *testing.T) {
		block, txs, err := Normalize(validRawBlock())
		require.NoError(t, err)

		assert.Equal(t, "0xblockhash", block.Hash)
		assert.Equal(t, uint64(100), block.Number)
		assert.Equal(t, time.Date(2024, 11, 26, 11, 5, 36, 0, time.UTC), block.Timestamp)
		assert.Equal(t, uint64(30_000_000), block.GasLimit)
		assert.Equal(t, uint64(1_000_000), block.GasUsed)
		assert.Equal(t, "0xminer", block.Miner)
		assert.Equal(t, uint64(1024), block.Size)
		assert.Equal(t, 2, block.TransactionCount)
		assert.Equal(t, "2024-11-26", block.Date())

		require.Len(t, txs, 2)
		assert.Equal(t, "0xtx0", txs[0].Hash)
		assert.Equal(t, uint64(100), txs[0].BlockNumber)
		assert.Zero(t, txs[0].Value.Cmp(big.NewInt(5_000_000_000_000_000_000)))
		assert.Equal(t, uint32(0), txs[0].Index)
		assert.Equal(t, uint8(0), txs[0].Type)
		assert.False(t, txs[0].IsContractCreation())
		assert.Nil(t, txs[0].MaxFeePerGas)

		assert.Equal(t, "0xtx1", txs[1].Hash)
		assert.True(t, txs[1].IsContractCreation())
		assert.Equal(t, uint8(2), txs[1].Type)
		assert.Zero(t, txs[1].MaxFeePerGas.Cmp(big.NewInt(2_000_000_000)))
	})

	t.Run("preserves source transaction order", func(t *testing.T) {
		raw := validRawBlock()

		_, txs, err := Normalize(raw)
		require.NoError(t, err)

		for i, tx := range txs {
			assert.Equal(t, raw.Transactions[i].Hash, tx.Hash)
			assert.Equal(t, uint32(i), tx.Index)
		}
	})

	t.Run("rejects gasUsed above gasLimit", func(t *testing.T) {
		raw := validRawBlock()
		raw.GasUsed = types.Hex("0x1c9c381") // limit + 1

		_, _, err := Normalize(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNormalization)
		assert.ErrorIs(t, err, ErrGasAboveLimit)
	})

	t.Run("rejects missing block number", func(t *testing.T) {
		raw := validRawBlock()
		raw.Number = ""

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrNormalization)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("rejects missing block hash", func(t *testing.T) {
		raw := validRawBlock()
		raw.Hash = ""

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("rejects non-dense transaction indices", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[1].TransactionIndex = types.Hex("0x5")

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrSparseTransactionIndex)
	})

	t.Run("rejects transaction without sender", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[0].From = ""

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("rejects transaction without value", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[0].Value = ""

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("rejects a transaction type wider than one byte", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[0].Type = types.Hex("0x102") // would alias type 2 if truncated

		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrNormalization)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("tolerates missing optional fee fields", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[0].GasPrice = ""
		raw.Transactions[0].Type = ""

		_, txs, err := Normalize(raw)
		require.NoError(t, err)
		assert.Nil(t, txs[0].GasPrice)
		assert.Equal(t, uint8(0), txs[0].Type)
	})

	t.Run("handles a block with no transactions", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions = nil

		block, txs, err := Normalize(raw)
		require.NoError(t, err)
		assert.Empty(t, txs)
		assert.Zero(t, block.TransactionCount)
	})

	t.Run("decodes values wider than 64 bits", func(t *testing.T) {
		raw := validRawBlock()
		raw.Transactions[0].Value = types.Hex("0x152d02c7e14af6800000") // 100,000 ETH

		_, txs, err := Normalize(raw)
		require.NoError(t, err)

		expected, ok := new(big.Int).SetString("100000000000000000000000", 10)
		require.True(t, ok)
		assert.Zero(t, txs[0].Value.Cmp(expected))
	})
}
