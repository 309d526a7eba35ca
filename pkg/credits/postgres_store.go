package credits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/creditkit/pkg/pg"
)

// PostgresStore implements UsageStore on a usage_records table (see the
// migrations directory for the schema). Counter updates are single
// UPDATE statements with column arithmetic and the throttle markers are
// conditional updates, so no read-modify-write happens inside the store
// and concurrent requests for one subject cannot lose increments.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed usage store.
// Panics if pool is nil to fail fast during initialization.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("credits: pgx pool is required")
	}
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, subjectID uuid.UUID) (UsageRecord, error) {
	const query = `
		SELECT subject_id, period_start, consumed, top_up,
		       last_recharge_attempt, last_exhaustion_notice
		FROM usage_records
		WHERE subject_id = $1`

	var record UsageRecord
	err := s.pool.QueryRow(ctx, query, subjectID).Scan(
		&record.SubjectID,
		&record.PeriodStart,
		&record.Consumed,
		&record.TopUp,
		&record.LastRechargeAttempt,
		&record.LastExhaustionNotice,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return UsageRecord{}, ErrUsageRecordNotFound
		}
		return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, err)
	}
	return record, nil
}

func (s *PostgresStore) Put(ctx context.Context, record UsageRecord) error {
	const query = `
		INSERT INTO usage_records
			(subject_id, period_start, consumed, top_up, last_recharge_attempt, last_exhaustion_notice)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (subject_id) DO UPDATE SET
			period_start = EXCLUDED.period_start,
			consumed = EXCLUDED.consumed,
			top_up = EXCLUDED.top_up,
			last_recharge_attempt = EXCLUDED.last_recharge_attempt,
			last_exhaustion_notice = EXCLUDED.last_exhaustion_notice,
			updated_at = now()`

	_, err := s.pool.Exec(ctx, query,
		record.SubjectID,
		record.PeriodStart,
		record.Consumed,
		record.TopUp,
		record.LastRechargeAttempt,
		record.LastExhaustionNotice,
	)
	if err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *PostgresStore) IncrementConsumed(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, delta, 0)
}

func (s *PostgresStore) IncrementTopUp(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, 0, delta)
}

// increment is an atomic upsert: a missing subject gets a fresh record
// seeded with the delta, an existing one gets column arithmetic.
func (s *PostgresStore) increment(ctx context.Context, subjectID uuid.UUID, consumed, topUp int64) error {
	const query = `
		INSERT INTO usage_records (subject_id, period_start, consumed, top_up)
		VALUES ($1, now(), $2, $3)
		ON CONFLICT (subject_id) DO UPDATE SET
			consumed = usage_records.consumed + EXCLUDED.consumed,
			top_up = usage_records.top_up + EXCLUDED.top_up,
			updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, subjectID, consumed, topUp); err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *PostgresStore) TryMarkRechargeAttempt(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "last_recharge_attempt", subjectID, now, window)
}

func (s *PostgresStore) TryMarkExhaustionNotice(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "last_exhaustion_notice", subjectID, now, window)
}

// tryMark sets a throttle marker in one conditional statement. The WHERE
// clause is the throttle: the marker is written only when absent or older
// than the window, and the row count says whether this caller won.
func (s *PostgresStore) tryMark(ctx context.Context, column string, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	// column is one of two compile-time constants, never user input.
	query := `
		INSERT INTO usage_records (subject_id, period_start, ` + column + `)
		VALUES ($1, now(), $2)
		ON CONFLICT (subject_id) DO UPDATE SET
			` + column + ` = EXCLUDED.` + column + `,
			updated_at = now()
		WHERE usage_records.` + column + ` IS NULL
		   OR usage_records.` + column + ` < $3`

	tag, err := s.pool.Exec(ctx, query, subjectID, now, now.Add(-window))
	if err != nil {
		return false, errors.Join(ErrFailedToSaveUsage, err)
	}
	return tag.RowsAffected() > 0, nil
}
