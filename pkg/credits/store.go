package credits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/creditkit/pkg/plans"
)

// UsageStore persists per-subject usage records. Records are keyed by
// subject, so different subjects never contend.
//
// Counter mutations and throttle markers are store-level primitives rather
// than read-modify-write on a loaded record: increments must be atomic and
// marker writes conditional, otherwise concurrent requests for the same
// subject can double-spend quota or trigger duplicate recharges.
type UsageStore interface {
	// Get retrieves the usage record for a subject.
	// Returns ErrUsageRecordNotFound if no record exists yet.
	Get(ctx context.Context, subjectID uuid.UUID) (UsageRecord, error)

	// Put creates or replaces the whole record. Used to persist period
	// rollovers and to seed a record for a new subject.
	Put(ctx context.Context, record UsageRecord) error

	// IncrementConsumed atomically adds delta to the consumed counter,
	// creating a zero record first if the subject has none.
	IncrementConsumed(ctx context.Context, subjectID uuid.UUID, delta int64) error

	// IncrementTopUp atomically adds delta to the standing top-up balance,
	// creating a zero record first if the subject has none.
	IncrementTopUp(ctx context.Context, subjectID uuid.UUID, delta int64) error

	// TryMarkRechargeAttempt conditionally sets the recharge throttle
	// marker to now. Returns false without writing when a marker newer
	// than now-window already exists. The conditional write is what keeps
	// two concurrent shortfalls from both charging the payment provider.
	TryMarkRechargeAttempt(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error)

	// TryMarkExhaustionNotice conditionally sets the notification throttle
	// marker to now, with the same semantics as TryMarkRechargeAttempt.
	TryMarkExhaustionNotice(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error)
}

// Profile carries the subject attributes the engine needs but does not
// own: the plan tier, the stored payment instrument reference used for
// off-session recharges, and the notification address.
type Profile struct {
	Tier       plans.Tier
	PaymentRef string // payment provider customer reference, empty if none stored
	Email      string
	Name       string
}

// ProfileSource resolves subject profiles from the application's user
// storage. Implementations should be fast; this is called on every check.
type ProfileSource interface {
	Profile(ctx context.Context, subjectID uuid.UUID) (Profile, error)
}

// ProfileSourceFunc adapts a function to the ProfileSource interface.
type ProfileSourceFunc func(ctx context.Context, subjectID uuid.UUID) (Profile, error)

func (f ProfileSourceFunc) Profile(ctx context.Context, subjectID uuid.UUID) (Profile, error) {
	return f(ctx, subjectID)
}
