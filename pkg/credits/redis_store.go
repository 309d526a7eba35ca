package credits

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements UsageStore on Redis. Counters live in a per-subject
// hash mutated with HINCRBY; the throttle markers are separate SET NX keys
// whose TTL is the throttle window, which makes the marker write atomic
// and self-expiring.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed usage store. Keys are namespaced
// under "credits:". Panics if client is nil to fail fast during
// initialization.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("credits: redis client is required")
	}
	return &RedisStore{client: client, prefix: "credits"}
}

func (s *RedisStore) usageKey(subjectID uuid.UUID) string {
	return fmt.Sprintf("%s:usage:%s", s.prefix, subjectID)
}

func (s *RedisStore) markerKey(kind string, subjectID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, kind, subjectID)
}

func (s *RedisStore) Get(ctx context.Context, subjectID uuid.UUID) (UsageRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.usageKey(subjectID)).Result()
	if err != nil {
		return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, err)
	}
	if len(fields) == 0 {
		return UsageRecord{}, ErrUsageRecordNotFound
	}

	record := UsageRecord{SubjectID: subjectID}
	if raw, ok := fields["period_start"]; ok {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, fmt.Errorf("parse period_start: %w", err))
		}
		record.PeriodStart = ts
	}
	record.Consumed, _ = strconv.ParseInt(fields["consumed"], 10, 64)
	record.TopUp, _ = strconv.ParseInt(fields["top_up"], 10, 64)

	// Markers live in their own keys; a missing key means the throttle
	// window has expired, which reads back as "no marker".
	if ts, ok := s.markerTime(ctx, "recharge", subjectID); ok {
		record.LastRechargeAttempt = &ts
	}
	if ts, ok := s.markerTime(ctx, "notice", subjectID); ok {
		record.LastExhaustionNotice = &ts
	}

	return record, nil
}

func (s *RedisStore) Put(ctx context.Context, record UsageRecord) error {
	err := s.client.HSet(ctx, s.usageKey(record.SubjectID),
		"period_start", record.PeriodStart.UTC().Format(time.RFC3339Nano),
		"consumed", record.Consumed,
		"top_up", record.TopUp,
	).Err()
	if err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *RedisStore) IncrementConsumed(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, "consumed", delta)
}

func (s *RedisStore) IncrementTopUp(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, "top_up", delta)
}

func (s *RedisStore) increment(ctx context.Context, subjectID uuid.UUID, field string, delta int64) error {
	key := s.usageKey(subjectID)

	// Seed the period start for brand-new subjects; HSETNX keeps the
	// existing value when the record is already there.
	pipe := s.client.TxPipeline()
	pipe.HSetNX(ctx, key, "period_start", time.Now().UTC().Format(time.RFC3339Nano))
	pipe.HIncrBy(ctx, key, field, delta)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *RedisStore) TryMarkRechargeAttempt(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "recharge", subjectID, now, window)
}

func (s *RedisStore) TryMarkExhaustionNotice(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "notice", subjectID, now, window)
}

// tryMark acquires a throttle marker with SET NX and a TTL equal to the
// window. Exactly one concurrent caller gets true; the key expires on its
// own when the window passes.
func (s *RedisStore) tryMark(ctx context.Context, kind string, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx,
		s.markerKey(kind, subjectID),
		now.UTC().Format(time.RFC3339Nano),
		window,
	).Result()
	if err != nil {
		return false, errors.Join(ErrFailedToSaveUsage, err)
	}
	return ok, nil
}

func (s *RedisStore) markerTime(ctx context.Context, kind string, subjectID uuid.UUID) (time.Time, bool) {
	raw, err := s.client.Get(ctx, s.markerKey(kind, subjectID)).Result()
	if err != nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
