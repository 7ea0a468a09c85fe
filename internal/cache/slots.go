package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SlotCache is a read-through cache for per-day availability. Entries
// are short-lived and dropped eagerly whenever a booking for the
// barber/day changes, so a failed invalidation only extends staleness
// by the TTL.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(addr string, ttl time.Duration) *SlotCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, slot cache disabled")
		return nil
	}

	return &SlotCache{rdb: rdb, ttl: ttl}
}

func slotKey(barberID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s", barberID, date.Format("2006-01-02"))
}

func (c *SlotCache) Get(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) ([]time.Time, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []time.Time
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
	slots []time.Time,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("slot cache set failed")
	}
}

func (c *SlotCache) Invalidate(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) {

	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(barberID, date)).Err(); err != nil {
		log.Warn().Err(err).Msg("slot cache invalidation failed")
	}
}
