package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/notarium/notary-api/internal/core/domain"
)

const (
	lockKey       = "lock:appointment_calendar"
	lockTTL       = 5 * time.Second
	acquireWait   = 2 * time.Second
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only when the caller still owns it, so a
// holder whose TTL expired cannot release a lock someone else acquired.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// CalendarLock is a Redis mutex over the practice's single shared calendar.
// Holding it across the overlap scan and the insert makes booking atomic with
// respect to all other booking attempts. The TTL bounds how long a crashed
// holder can block the calendar.
type CalendarLock struct {
	client *redis.Client
}

// NewCalendarLock creates a CalendarLock wrapping the given Redis client.
func NewCalendarLock(client *redis.Client) *CalendarLock {
	return &CalendarLock{client: client}
}

// Acquire takes the lock, retrying briefly while another booking holds it.
// Returns the ownership token needed to release, or domain.ErrCalendarBusy
// once the wait budget is spent.
func (l *CalendarLock) Acquire(ctx context.Context) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(acquireWait)

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, lockTTL).Result()
		if err != nil {
			return "", fmt.Errorf("calendar lock: %w", err)
		}
		if ok {
			return token, nil
		}
		if time.Now().After(deadline) {
			return "", domain.ErrCalendarBusy
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// Release frees the lock if token still owns it.
func (l *CalendarLock) Release(ctx context.Context, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
		return fmt.Errorf("calendar unlock: %w", err)
	}
	return nil
}
