package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const conflictReportKey = "conflicts:report"

// ConflictReportCache holds the serialized fleet-wide conflict report for a
// short TTL. Roster and fleet mutations invalidate it so a stale report
// never outlives the write that changed the answer.
type ConflictReportCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewConflictReportCache(client *goredis.Client, ttlSeconds int) *ConflictReportCache {
	return &ConflictReportCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *ConflictReportCache) Get(ctx context.Context) ([]byte, bool, error) {
	bytes, err := c.client.Get(ctx, conflictReportKey).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get conflict report: %w", err)
	}
	return bytes, true, nil
}

func (c *ConflictReportCache) Set(ctx context.Context, report []byte) error {
	if err := c.client.Set(ctx, conflictReportKey, report, c.ttl).Err(); err != nil {
		return fmt.Errorf("set conflict report: %w", err)
	}
	return nil
}

func (c *ConflictReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, conflictReportKey).Err(); err != nil {
		return fmt.Errorf("invalidate conflict report: %w", err)
	}
	return nil
}
