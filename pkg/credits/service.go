package credits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/creditkit/pkg/async"
	"github.com/dmitrymomot/creditkit/pkg/email"
	"github.com/dmitrymomot/creditkit/pkg/payment"
	"github.com/dmitrymomot/creditkit/pkg/plans"
)

// Default auto-recharge parameters: $10 charged off-session, credited as
// 1000 credits, at most once per hour per subject.
const (
	DefaultRechargeCredits  int64 = 1000
	DefaultRechargeThrottle       = time.Hour
	DefaultNoticeThrottle         = 24 * time.Hour
	DefaultChargeTimeout          = 30 * time.Second
)

// Service meters credit consumption against plan allowances and gates
// restricted providers by tier.
type Service interface {
	// Check reports whether the subject may perform a call with the given
	// model and provider. It is a dry-run: nothing is consumed. A paid
	// subject short on credits gets one throttled auto-recharge attempt
	// before the check is denied; an unresolved denial fires a throttled
	// exhaustion notice as a best-effort side task.
	//
	// Check never returns an error: internal failures fail closed with a
	// generic retry message, since granting access without being able to
	// record consumption risks unbounded free usage. Use
	// CheckResult.Denial for errors.Is matching.
	Check(ctx context.Context, subjectID uuid.UUID, model, provider string) CheckResult

	// Deduct records consumption for a completed call. Call it only after
	// the metered action succeeded; it trusts the caller's prior Check and
	// does not re-validate sufficiency.
	Deduct(ctx context.Context, subjectID uuid.UUID, model string) error

	// TopUp adds purchased credits to the subject's standing balance.
	TopUp(ctx context.Context, subjectID uuid.UUID, credits int64) error

	// Summary returns a display-oriented view of the subject's balance.
	Summary(ctx context.Context, subjectID uuid.UUID) (Summary, error)
}

type service struct {
	store    UsageStore
	profiles ProfileSource
	catalog  *plans.Catalog
	gate     *Gate
	costs    map[string]int64

	provider payment.Provider  // nil disables auto-recharge
	sender   email.EmailSender // nil disables exhaustion notices

	rechargeCredits  int64
	rechargeThrottle time.Duration
	chargeTimeout    time.Duration
	noticeThrottle   time.Duration

	log *slog.Logger
	now func() time.Time
}

// NewService creates a credit metering service. Panics if store, profiles,
// or catalog is nil to fail fast during initialization.
func NewService(store UsageStore, profiles ProfileSource, catalog *plans.Catalog, opts ...ServiceOption) Service {
	if store == nil {
		panic("credits: UsageStore is required")
	}
	if profiles == nil {
		panic("credits: ProfileSource is required")
	}
	if catalog == nil {
		panic("credits: plan catalog is required")
	}

	s := &service{
		store:            store,
		profiles:         profiles,
		catalog:          catalog,
		gate:             DefaultGate(),
		costs:            defaultModelCosts,
		rechargeCredits:  DefaultRechargeCredits,
		rechargeThrottle: DefaultRechargeThrottle,
		chargeTimeout:    DefaultChargeTimeout,
		noticeThrottle:   DefaultNoticeThrottle,
		log:              slog.Default(),
		now:              func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Check(ctx context.Context, subjectID uuid.UUID, model, provider string) CheckResult {
	cost := s.costOf(model)

	profile, err := s.profiles.Profile(ctx, subjectID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to resolve subject profile",
			"subject_id", subjectID, "error", err)
		return s.failClosed(cost)
	}
	plan := s.catalog.Get(profile.Tier)

	// Tier gating short-circuits before any quota math.
	if !s.gate.CanUseProvider(profile.Tier, provider) {
		return CheckResult{
			Allowed: false,
			Reason:  ReasonProviderRestricted,
			Cost:    cost,
			Limit:   plan.CreditAllowance,
			Message: fmt.Sprintf("%s models are available on the %s plan and above; upgrade your plan to use them",
				provider, s.catalog.Get(s.gate.MinTier()).Name),
		}
	}

	record, err := s.loadNormalized(ctx, subjectID, true)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to load usage record",
			"subject_id", subjectID, "error", err)
		return s.failClosed(cost)
	}

	if plan.HasUnlimitedCredits() {
		return CheckResult{
			Allowed:   true,
			Cost:      cost,
			Used:      record.Consumed,
			Remaining: Unlimited,
			Limit:     Unlimited,
		}
	}

	if result, ok := s.evaluate(plan, record, cost); ok {
		return result
	}

	// Shortfall: one throttled recharge attempt, then re-evaluate.
	if s.provider != nil && s.attemptRecharge(ctx, subjectID, profile) {
		if refreshed, err := s.loadNormalized(ctx, subjectID, false); err == nil {
			if result, ok := s.evaluate(plan, refreshed, cost); ok {
				return result
			}
			record = refreshed
		}
	}

	total := plan.CreditAllowance + record.TopUp
	denied := CheckResult{
		Allowed:   false,
		Reason:    ReasonInsufficientCredits,
		Cost:      cost,
		Used:      record.Consumed,
		Remaining: max(0, total-record.Consumed),
		Limit:     total,
		Message: fmt.Sprintf("insufficient credits: $%s remaining, but this request costs $%s; top up your balance or upgrade your plan",
			dollars(max(0, total-record.Consumed)), dollars(cost)),
	}

	if s.sender != nil {
		// Best-effort side task: outcome discarded, never blocks the check.
		async.Fire(context.WithoutCancel(ctx), s.log, func(ctx context.Context) error {
			return s.notifyExhausted(ctx, subjectID, profile, denied)
		})
	}

	return denied
}

func (s *service) Deduct(ctx context.Context, subjectID uuid.UUID, model string) error {
	cost := s.costOf(model)

	if _, err := s.loadNormalized(ctx, subjectID, true); err != nil {
		return err
	}

	if err := s.store.IncrementConsumed(ctx, subjectID, cost); err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}

	s.log.DebugContext(ctx, "credits deducted",
		"subject_id", subjectID, "model", model, "cost", cost)
	return nil
}

func (s *service) TopUp(ctx context.Context, subjectID uuid.UUID, credits int64) error {
	if credits <= 0 {
		return ErrInvalidTopUpAmount
	}

	if _, err := s.loadNormalized(ctx, subjectID, true); err != nil {
		return err
	}

	if err := s.store.IncrementTopUp(ctx, subjectID, credits); err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}

	s.log.InfoContext(ctx, "credits topped up",
		"subject_id", subjectID, "credits", credits)
	return nil
}

func (s *service) Summary(ctx context.Context, subjectID uuid.UUID) (Summary, error) {
	profile, err := s.profiles.Profile(ctx, subjectID)
	if err != nil {
		return Summary{}, err
	}
	plan := s.catalog.Get(profile.Tier)

	record, err := s.loadNormalized(ctx, subjectID, false)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Tier:         profile.Tier,
		PlanName:     plan.Name,
		Used:         record.Consumed,
		TopUp:        record.TopUp,
		PeriodStart:  record.PeriodStart,
		PeriodEnd:    record.PeriodEnd(),
		UsedDollars:  dollars(record.Consumed),
		TopUpDollars: dollars(record.TopUp),
	}

	if plan.HasUnlimitedCredits() {
		summary.Limit = Unlimited
		summary.Remaining = Unlimited
		summary.LimitDollars = "unlimited"
		summary.RemainingDollars = "unlimited"
		return summary, nil
	}

	total := plan.CreditAllowance + record.TopUp
	summary.Limit = total
	summary.Remaining = max(0, total-record.Consumed)
	summary.LimitDollars = dollars(summary.Limit)
	summary.RemainingDollars = dollars(summary.Remaining)
	return summary, nil
}

// evaluate computes the quota arithmetic for a limited plan. The bool is
// false when the balance cannot cover the cost.
func (s *service) evaluate(plan plans.Plan, record UsageRecord, cost int64) (CheckResult, bool) {
	total := plan.CreditAllowance + record.TopUp
	if record.Consumed+cost > total {
		return CheckResult{}, false
	}
	return CheckResult{
		Allowed:   true,
		Cost:      cost,
		Used:      record.Consumed,
		Remaining: max(0, total-record.Consumed),
		Limit:     total,
	}, true
}

// loadNormalized loads the subject's record (a zero record when none
// exists yet) and applies period rollover. A rolled record is persisted
// only when persistRollover is set, keeping pure reads off the write path.
func (s *service) loadNormalized(ctx context.Context, subjectID uuid.UUID, persistRollover bool) (UsageRecord, error) {
	record, err := s.store.Get(ctx, subjectID)
	if err != nil {
		if errors.Is(err, ErrUsageRecordNotFound) {
			return NewUsageRecord(subjectID, s.now()), nil
		}
		return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, err)
	}

	normalized, rolled := record.NormalizedAt(s.now())
	if rolled && persistRollover {
		if err := s.store.Put(ctx, normalized); err != nil {
			return UsageRecord{}, errors.Join(ErrFailedToSaveUsage, err)
		}
	}
	return normalized, nil
}

func (s *service) costOf(model string) int64 {
	if model == "" {
		return DefaultModelCost
	}
	if cost, ok := s.costs[model]; ok {
		return cost
	}
	return DefaultModelCost
}

func (s *service) failClosed(cost int64) CheckResult {
	return CheckResult{
		Allowed: false,
		Reason:  ReasonTemporaryFailure,
		Cost:    cost,
		Message: "unable to verify your credit balance right now, please try again",
	}
}

// dollars renders a credit amount as a dollar string for display only.
func dollars(credits int64) string {
	return fmt.Sprintf("%.2f", float64(credits)*CreditUnitDollars)
}
