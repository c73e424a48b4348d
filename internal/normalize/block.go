// Package normalize maps raw Ethereum JSON-RPC block payloads into the
// canonical records persisted and aggregated by the rest of the system. It
// decodes hex-encoded quantities into native integers, drops fields the
// system does not retain, and enforces the structural invariants expected
// from a canonical-chain block.
package normalize

import (
	"math/big"
	"time"

	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"
)

type (
	// RawTransaction represents a raw transaction object as returned by the
	// Ethereum JSON-RPC API with full transaction objects requested.
	RawTransaction struct {
		Hash                 string    `json:"hash"`
		From                 string    `json:"from"`
		To                   string    `json:"to"`
		Value                types.Hex `json:"value"`
		Gas                  types.Hex `json:"gas"`
		GasPrice             types.Hex `json:"gasPrice"`
		MaxFeePerGas         types.Hex `json:"maxFeePerGas"`
		MaxPriorityFeePerGas types.Hex `json:"maxPriorityFeePerGas"`
		Input                string    `json:"input"`
		TransactionIndex     types.Hex `json:"transactionIndex"`
		Type                 types.Hex `json:"type"`
	}

	// RawBlock represents the block structure returned by eth_getBlockByNumber.
	// Fields the system explicitly discards (difficulty, extraData, logsBloom,
	// nonce, signature components, uncles, withdrawals) are not declared and
	// fall away during decoding.
	RawBlock struct {
		Hash         string           `json:"hash"`
		ParentHash   string           `json:"parentHash"`
		Miner        string           `json:"miner"`
		Number       types.Hex        `json:"number"`
		Timestamp    types.Hex        `json:"timestamp"`
		GasLimit     types.Hex        `json:"gasLimit"`
		GasUsed      types.Hex        `json:"gasUsed"`
		Size         types.Hex        `json:"size"`
		Transactions []RawTransaction `json:"transactions"`
	}
)

// Block is the canonical record of one Ethereum block. It is immutable once
// produced; reprocessing the same block number overwrites the stored record.
type Block struct {
	Hash             string    // 32-byte block hash, the record identity
	Number           uint64    // block height on the canonical chain
	Timestamp        time.Time // block timestamp, UTC
	GasLimit         uint64    // maximum gas allowed in the block
	GasUsed          uint64    // gas consumed by all transactions
	Miner            string    // 20-byte address of the block producer
	ParentHash       string    // hash of the preceding block
	Size             uint64    // block size in bytes
	TransactionCount int       // number of transactions carried by the block
}

// Date returns the UTC calendar date of the block formatted as YYYY-MM-DD,
// the partition key used by daily aggregation and persistence.
func (b Block) Date() string {
	return b.Timestamp.UTC().Format(time.DateOnly)
}

// Transaction is the canonical record of one Ethereum transaction.
type Transaction struct {
	Hash                 string   // 32-byte transaction hash, the record identity
	BlockNumber          uint64   // number of the containing block
	From                 string   // sender address
	To                   string   // recipient address; empty for contract creation
	Value                *big.Int // transferred amount in wei
	Gas                  uint64   // gas limit supplied by the sender
	GasPrice             *big.Int // effective gas price in wei; nil when the provider omits it
	MaxFeePerGas         *big.Int // fee-market cap; nil for legacy transactions
	MaxPriorityFeePerGas *big.Int // fee-market tip; nil for legacy transactions
	Input                string   // call data; "0x" for plain value transfers
	Index                uint32   // position within the block, dense 0..n-1
	Type                 uint8    // transaction type (0 legacy, 1 access list, 2 fee market, ...)
}

// IsContractCreation reports whether the transaction deploys a new contract,
// signaled by the absence of a recipient address.
func (t Transaction) IsContractCreation() bool {
	return t.To == ""
}
