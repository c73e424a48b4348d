package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a").
// It provides validation, JSON marshaling/unmarshaling, and conversion to
// native integer types. Quantities larger than 64 bits (e.g., transaction
// values in wei) are supported through BigInt.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes the given unsigned integer as a Hex quantity.
func HexFromUint64(v uint64) Hex {
	return Hex(fmt.Sprintf("0x%x", v))
}

// validateHex checks whether a string is a valid hexadecimal quantity starting
// with "0x" or "0X". Quantities of arbitrary length are accepted.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether the Hex holds no value at all.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Uint64 returns the decoded uint64 value of the hexadecimal string.
// It returns an error if the value is empty, malformed, or does not fit
// into 64 bits.
func (h Hex) Uint64() (uint64, error) {
	if h.IsEmpty() {
		return 0, fmt.Errorf("empty hex quantity")
	}

	v, err := strconv.ParseUint(string(h)[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("hex quantity %q: %w", h, err)
	}
	return v, nil
}

// BigInt returns the decoded arbitrary-precision value of the hexadecimal
// string. It returns an error if the value is empty or malformed.
func (h Hex) BigInt() (*big.Int, error) {
	if h.IsEmpty() {
		return nil, fmt.Errorf("empty hex quantity")
	}

	v, ok := new(big.Int).SetString(string(h)[2:], 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", h)
	}
	return v, nil
}
