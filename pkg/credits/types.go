package credits

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/creditkit/pkg/plans"
)

// Unlimited marks an unlimited balance or limit in results (-1).
const Unlimited int64 = -1

// CreditUnitDollars is the monetary value of one credit. All balance
// arithmetic happens in integer credits; dollars exist for display only.
const CreditUnitDollars = 0.01

// UsageRecord tracks a subject's credit consumption for the current
// accounting period. Consumed resets on period rollover; TopUp is a
// standing balance and survives rollovers.
type UsageRecord struct {
	SubjectID   uuid.UUID
	PeriodStart time.Time
	Consumed    int64
	TopUp       int64

	// Throttle markers for auto-recharge and exhaustion notices.
	// Managed through the store's conditional mark operations.
	LastRechargeAttempt  *time.Time
	LastExhaustionNotice *time.Time
}

// NewUsageRecord returns a zero-usage record with the period starting now.
func NewUsageRecord(subjectID uuid.UUID, now time.Time) UsageRecord {
	return UsageRecord{
		SubjectID:   subjectID,
		PeriodStart: now,
	}
}

// DenialReason classifies why a check was denied.
type DenialReason string

const (
	ReasonInsufficientCredits DenialReason = "insufficient_credits"
	ReasonProviderRestricted  DenialReason = "provider_restricted"
	ReasonTemporaryFailure    DenialReason = "temporary_failure"
)

// CheckResult is the outcome of a credit check. It is a dry-run: no
// consumption is recorded until the caller invokes Deduct.
type CheckResult struct {
	Allowed   bool
	Reason    DenialReason // set only when denied
	Cost      int64        // credits this call would consume
	Used      int64
	Remaining int64 // -1 when the allowance is unlimited
	Limit     int64 // allowance + top-up, -1 when unlimited
	Message   string
}

// Denial maps a denied result to its sentinel error, or nil when allowed.
// Lets callers use errors.Is without inspecting the reason string.
func (r CheckResult) Denial() error {
	if r.Allowed {
		return nil
	}
	switch r.Reason {
	case ReasonProviderRestricted:
		return ErrProviderRestricted
	case ReasonTemporaryFailure:
		return ErrCheckUnavailable
	default:
		return ErrInsufficientCredits
	}
}

// Summary is a display-oriented view of a subject's credit balance.
// Dollar strings are derived from the integer credit values and must never
// feed back into balance arithmetic.
type Summary struct {
	Tier             plans.Tier
	PlanName         string
	Used             int64
	TopUp            int64
	Remaining        int64 // -1 when unlimited
	Limit            int64 // -1 when unlimited
	PeriodStart      time.Time
	PeriodEnd        time.Time
	UsedDollars      string
	TopUpDollars     string
	RemainingDollars string
	LimitDollars     string
}
