package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const flowKeyPrefix = "booking:flow:"

// FlowCache remembers the day a user picked so back navigation can return to the time picker.
type FlowCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewFlowCache(client redis.Cmdable, ttl time.Duration) *FlowCache {
	return &FlowCache{client: client, ttl: ttl}
}

func flowKey(userID int64) string {
	return flowKeyPrefix + strconv.FormatInt(userID, 10)
}

func (c *FlowCache) SaveDay(ctx context.Context, userID int64, day schedule.Weekday) error {
	if err := c.client.Set(ctx, flowKey(userID), int(day), c.ttl).Err(); err != nil {
		return errs.Wrap(err, "save booking flow day")
	}
	return nil
}

// LoadDay returns 0 when nothing is stored or the entry expired.
func (c *FlowCache) LoadDay(ctx context.Context, userID int64) (schedule.Weekday, error) {
	v, err := c.client.Get(ctx, flowKey(userID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "load booking flow day")
	}
	day := schedule.Weekday(v)
	if !day.Valid() {
		return 0, nil
	}
	return day, nil
}

func (c *FlowCache) Clear(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, flowKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "clear booking flow")
	}
	return nil
}
