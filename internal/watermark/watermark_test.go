package watermark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Get(t *testing.T) {
	t.Run("returns stored watermark", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(101), nil).Once()

		tracker := NewTracker(mockStorage)

		current, found, err := tracker.Get(t.Context(), "mainnet")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(101), current)
	})

	t.Run("reports a fresh stream", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(0), ErrNoWatermarkFound).Once()

		tracker := NewTracker(mockStorage)

		_, found, err := tracker.Get(t.Context(), "mainnet")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		wantErr := errors.New("connection refused")

		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(0), wantErr).Once()

		tracker := NewTracker(mockStorage)

		_, _, err := tracker.Get(t.Context(), "mainnet")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestTracker_AdvanceIfContiguous(t *testing.T) {
	t.Run("advances to the direct successor", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(101), nil).Once()
		mockStorage.EXPECT().SaveWatermark(t.Context(), "mainnet", uint64(102)).Return(nil).Once()

		tracker := NewTracker(mockStorage)

		advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 102)
		require.NoError(t, err)
		assert.True(t, advanced)
	})

	t.Run("adopts the first block of a fresh stream as origin", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(0), ErrNoWatermarkFound).Once()
		mockStorage.EXPECT().SaveWatermark(t.Context(), "mainnet", uint64(500)).Return(nil).Once()

		tracker := NewTracker(mockStorage)

		advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 500)
		require.NoError(t, err)
		assert.True(t, advanced)
	})

	t.Run("refuses a block ahead of the next expected number", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(101), nil).Once()

		tracker := NewTracker(mockStorage)

		advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 104)
		require.NoError(t, err)
		assert.False(t, advanced)
	})

	t.Run("refuses a block at or below the watermark", func(t *testing.T) {
		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(101), nil).Twice()

		tracker := NewTracker(mockStorage)

		advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 101)
		require.NoError(t, err)
		assert.False(t, advanced)

		advanced, err = tracker.AdvanceIfContiguous(t.Context(), "mainnet", 50)
		require.NoError(t, err)
		assert.False(t, advanced)
	})

	t.Run("propagates save failures", func(t *testing.T) {
		wantErr := errors.New("write failed")

		mockStorage := NewStorageMock(t)
		mockStorage.EXPECT().LoadWatermark(t.Context(), "mainnet").Return(uint64(101), nil).Once()
		mockStorage.EXPECT().SaveWatermark(t.Context(), "mainnet", uint64(102)).Return(wantErr).Once()

		tracker := NewTracker(mockStorage)

		_, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 102)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestMemoryStorage(t *testing.T) {
	t.Run("load before save reports no watermark", func(t *testing.T) {
		storage := NewMemoryStorage()

		_, err := storage.LoadWatermark(t.Context(), "mainnet")
		assert.ErrorIs(t, err, ErrNoWatermarkFound)
	})

	t.Run("save then load round trips per stream", func(t *testing.T) {
		storage := NewMemoryStorage()

		require.NoError(t, storage.SaveWatermark(t.Context(), "mainnet", 7))
		require.NoError(t, storage.SaveWatermark(t.Context(), "sepolia", 9))

		block, err := storage.LoadWatermark(t.Context(), "mainnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(7), block)

		block, err = storage.LoadWatermark(t.Context(), "sepolia")
		require.NoError(t, err)
		assert.Equal(t, uint64(9), block)
	})

	t.Run("tracker over memory storage walks contiguously", func(t *testing.T) {
		tracker := NewTracker(NewMemoryStorage())

		for n := uint64(100); n <= 104; n++ {
			advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", n)
			require.NoError(t, err)
			assert.True(t, advanced, "block %d", n)
		}

		advanced, err := tracker.AdvanceIfContiguous(t.Context(), "mainnet", 110)
		require.NoError(t, err)
		assert.False(t, advanced)

		current, found, err := tracker.Get(t.Context(), "mainnet")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(104), current)
	})
}
