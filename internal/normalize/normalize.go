package normalize

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainmetrics-io/chainmetrics/internal/pkg/types"
)

// ErrNormalization is the root of every error returned by Normalize. Callers
// can match it with errors.Is to distinguish schema violations from transport
// failures.
var ErrNormalization = errors.New("block normalization failed")

var (
	// ErrMissingField indicates a required field was absent from the payload.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidQuantity indicates a hex-encoded quantity failed to decode.
	ErrInvalidQuantity = errors.New("invalid hex quantity")

	// ErrGasAboveLimit indicates the block reported more gas used than its limit.
	ErrGasAboveLimit = errors.New("gasUsed exceeds gasLimit")

	// ErrSparseTransactionIndex indicates transaction indices do not form the
	// dense 0..n-1 range in source order.
	ErrSparseTransactionIndex = errors.New("transaction indices are not dense")
)

// normalizationError wraps a field-level failure under ErrNormalization.
func normalizationError(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNormalization, field, err)
}

// requireUint64 decodes a required hex quantity, reporting a missing or
// malformed value as a normalization error for the named field.
func requireUint64(field string, h types.Hex) (uint64, error) {
	if h.IsEmpty() {
		return 0, normalizationError(field, ErrMissingField)
	}

	v, err := h.Uint64()
	if err != nil {
		return 0, normalizationError(field, fmt.Errorf("%w: %v", ErrInvalidQuantity, err))
	}
	return v, nil
}

// requireBigInt decodes a required arbitrary-precision hex quantity.
func requireBigInt(field string, h types.Hex) (*big.Int, error) {
	if h.IsEmpty() {
		return nil, normalizationError(field, ErrMissingField)
	}

	v, err := h.BigInt()
	if err != nil {
		return nil, normalizationError(field, fmt.Errorf("%w: %v", ErrInvalidQuantity, err))
	}
	return v, nil
}

// optionalBigInt decodes a hex quantity that may legitimately be absent
// (e.g., gasPrice on some fee-market responses). Absence yields nil.
func optionalBigInt(field string, h types.Hex) (*big.Int, error) {
	if h.IsEmpty() {
		return nil, nil
	}
	return requireBigInt(field, h)
}

// Normalize converts a RawBlock into its canonical Block record and the
// ordered sequence of canonical Transaction records it carries.
//
// It is a pure function: no I/O, no retained state. It fails with an error
// matching ErrNormalization when a required field is absent, a hex quantity
// does not decode, the gasUsed/gasLimit invariant is violated, or the
// transaction indices do not form a dense 0..n-1 range. Transaction order is
// preserved exactly as returned by the source; nothing is reordered or
// deduplicated.
func Normalize(raw RawBlock) (Block, []Transaction, error) {
	if raw.Hash == "" {
		return Block{}, nil, normalizationError("hash", ErrMissingField)
	}
	if raw.Miner == "" {
		return Block{}, nil, normalizationError("miner", ErrMissingField)
	}
	if raw.ParentHash == "" {
		return Block{}, nil, normalizationError("parentHash", ErrMissingField)
	}

	number, err := requireUint64("number", raw.Number)
	if err != nil {
		return Block{}, nil, err
	}

	timestamp, err := requireUint64("timestamp", raw.Timestamp)
	if err != nil {
		return Block{}, nil, err
	}

	gasLimit, err := requireUint64("gasLimit", raw.GasLimit)
	if err != nil {
		return Block{}, nil, err
	}

	gasUsed, err := requireUint64("gasUsed", raw.GasUsed)
	if err != nil {
		return Block{}, nil, err
	}

	if gasUsed > gasLimit {
		return Block{}, nil, fmt.Errorf("%w: %w: used %d, limit %d", ErrNormalization, ErrGasAboveLimit, gasUsed, gasLimit)
	}

	size, err := requireUint64("size", raw.Size)
	if err != nil {
		return Block{}, nil, err
	}

	block := Block{
		Hash:             raw.Hash,
		Number:           number,
		Timestamp:        time.Unix(int64(timestamp), 0).UTC(),
		GasLimit:         gasLimit,
		GasUsed:          gasUsed,
		Miner:            raw.Miner,
		ParentHash:       raw.ParentHash,
		Size:             size,
		TransactionCount: len(raw.Transactions),
	}

	transactions := make([]Transaction, 0, len(raw.Transactions))
	for i, rawTx := range raw.Transactions {
		tx, err := normalizeTransaction(number, rawTx)
		if err != nil {
			return Block{}, nil, fmt.Errorf("transaction %d: %w", i, err)
		}

		if tx.Index != uint32(i) {
			return Block{}, nil, fmt.Errorf("%w: %w: position %d carries index %d", ErrNormalization, ErrSparseTransactionIndex, i, tx.Index)
		}

		transactions = append(transactions, tx)
	}

	return block, transactions, nil
}

// normalizeTransaction converts one raw transaction into its canonical record.
func normalizeTransaction(blockNumber uint64, raw RawTransaction) (Transaction, error) {
	if raw.Hash == "" {
		return Transaction{}, normalizationError("hash", ErrMissingField)
	}
	if raw.From == "" {
		return Transaction{}, normalizationError("from", ErrMissingField)
	}

	value, err := requireBigInt("value", raw.Value)
	if err != nil {
		return Transaction{}, err
	}

	gas, err := requireUint64("gas", raw.Gas)
	if err != nil {
		return Transaction{}, err
	}

	index, err := requireUint64("transactionIndex", raw.TransactionIndex)
	if err != nil {
		return Transaction{}, err
	}

	gasPrice, err := optionalBigInt("gasPrice", raw.GasPrice)
	if err != nil {
		return Transaction{}, err
	}

	maxFee, err := optionalBigInt("maxFeePerGas", raw.MaxFeePerGas)
	if err != nil {
		return Transaction{}, err
	}

	maxPriorityFee, err := optionalBigInt("maxPriorityFeePerGas", raw.MaxPriorityFeePerGas)
	if err != nil {
		return Transaction{}, err
	}

	var txType uint64
	if !raw.Type.IsEmpty() {
		txType, err = requireUint64("type", raw.Type)
		if err != nil {
			return Transaction{}, err
		}
		// Type tags are a single byte on the wire; anything larger would
		// alias another tag after conversion.
		if txType > 0xff {
			return Transaction{}, normalizationError("type", fmt.Errorf("%w: value %d exceeds one byte", ErrInvalidQuantity, txType))
		}
	}

	return Transaction{
		Hash:                 raw.Hash,
		BlockNumber:          blockNumber,
		From:                 raw.From,
		To:                   raw.To,
		Value:                value,
		Gas:                  gas,
		GasPrice:             gasPrice,
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: maxPriorityFee,
		Input:                raw.Input,
		Index:                uint32(index),
		Type:                 uint8(txType),
	}, nil
}
