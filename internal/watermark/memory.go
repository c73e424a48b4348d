package watermark

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage implementation. It serves tests and
// one-shot ingestion runs where durability across process restarts is not
// required.
type MemoryStorage struct {
	mu    sync.Mutex
	marks map[string]uint64
}

// Compile-time assertion that MemoryStorage implements Storage.
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory watermark storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		marks: make(map[string]uint64),
	}
}

// SaveWatermark records the watermark for the stream.
func (m *MemoryStorage) SaveWatermark(_ context.Context, stream string, block uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.marks[stream] = block
	return nil
}

// LoadWatermark returns the watermark for the stream, or ErrNoWatermarkFound
// when none has been saved.
func (m *MemoryStorage) LoadWatermark(_ context.Context, stream string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	block, ok := m.marks[stream]
	if !ok {
		return 0, ErrNoWatermarkFound
	}
	return block, nil
}
