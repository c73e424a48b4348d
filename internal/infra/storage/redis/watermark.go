package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/chainmetrics-io/chainmetrics/internal/watermark"

	"github.com/redis/go-redis/v9"
)

// watermarkKeyPrefix is the namespace prefix for all keys belonging to the
// ingestion watermark system.
const watermarkKeyPrefix = "chainmetrics"

// watermarkKey constructs the Redis key holding the watermark of a stream.
// The format is:
//
//	"chainmetrics:watermark:<stream>"
func watermarkKey(stream string) string {
	return fmt.Sprintf("%s:watermark:%s", watermarkKeyPrefix, stream)
}

// SaveWatermark persists the highest contiguously committed block number for
// the given stream. The value is stored without expiration and overwrites
// any previous watermark.
func (c *client) SaveWatermark(ctx context.Context, stream string, block uint64) error {
	key := watermarkKey(stream)
	return c.conn.Set(ctx, key, strconv.FormatUint(block, 10), 0).Err()
}

// LoadWatermark retrieves the watermark saved for the given stream. It
// returns watermark.ErrNoWatermarkFound when the stream has no watermark yet.
func (c *client) LoadWatermark(ctx context.Context, stream string) (uint64, error) {
	key := watermarkKey(stream)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = watermark.ErrNoWatermarkFound
		}

		return 0, err
	}

	block, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt watermark %q for stream %s: %w", val, stream, err)
	}

	return block, nil
}

// Compile-time assertion to ensure client implements the watermark.Storage interface.
var _ watermark.Storage = new(client)
