package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexFromString(t *testing.T) {
	t.Run("accepts valid lowercase prefix", func(t *testing.T) {
		h, err := HexFromString("0x1a")
		require.NoError(t, err)
		assert.Equal(t, Hex("0x1a"), h)
	})

	t.Run("accepts valid uppercase prefix", func(t *testing.T) {
		h, err := HexFromString("0X1A")
		require.NoError(t, err)
		assert.Equal(t, Hex("0X1A"), h)
	})

	t.Run("accepts quantities wider than 64 bits", func(t *testing.T) {
		// 100000 ETH in wei does not fit into a uint64
		h, err := HexFromString("0x152d02c7e14af6800000")
		require.NoError(t, err)
		assert.Equal(t, Hex("0x152d02c7e14af6800000"), h)
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := HexFromString("1a")
		assert.Error(t, err)
	})

	t.Run("rejects non-hex characters", func(t *testing.T) {
		_, err := HexFromString("0xzz")
		assert.Error(t, err)
	})
}

func TestHexFromUint64(t *testing.T) {
	assert.Equal(t, Hex("0x0"), HexFromUint64(0))
	assert.Equal(t, Hex("0x64"), HexFromUint64(100))
	assert.Equal(t, Hex("0x1312d00"), HexFromUint64(20_000_000))
}

func TestHex_Uint64(t *testing.T) {
	t.Run("decodes a valid quantity", func(t *testing.T) {
		v, err := Hex("0x64").Uint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(100), v)
	})

	t.Run("fails on empty value", func(t *testing.T) {
		_, err := Hex("").Uint64()
		assert.Error(t, err)
	})

	t.Run("fails on overflow", func(t *testing.T) {
		_, err := Hex("0x152d02c7e14af6800000").Uint64()
		assert.Error(t, err)
	})
}

func TestHex_BigInt(t *testing.T) {
	t.Run("decodes a wide quantity", func(t *testing.T) {
		v, err := Hex("0x152d02c7e14af6800000").BigInt()
		require.NoError(t, err)

		expected, ok := new(big.Int).SetString("100000000000000000000000", 10)
		require.True(t, ok)
		assert.Zero(t, v.Cmp(expected))
	})

	t.Run("fails on empty value", func(t *testing.T) {
		_, err := Hex("").BigInt()
		assert.Error(t, err)
	})
}

func TestHex_JSON(t *testing.T) {
	t.Run("round trips through JSON", func(t *testing.T) {
		data, err := json.Marshal(Hex("0x1a"))
		require.NoError(t, err)
		assert.Equal(t, `"0x1a"`, string(data))

		var h Hex
		require.NoError(t, json.Unmarshal(data, &h))
		assert.Equal(t, Hex("0x1a"), h)
	})

	t.Run("unmarshal rejects invalid quantity", func(t *testing.T) {
		var h Hex
		assert.Error(t, json.Unmarshal([]byte(`"nope"`), &h))
	})
}
