package credits

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/creditkit/pkg/payment"
)

// attemptRecharge makes at most one off-session charge against the
// subject's stored payment instrument and credits the top-up balance on
// success. The throttle marker is written through a conditional store
// update before the provider is contacted, so two concurrent shortfalls
// cannot both reach the payment provider.
//
// One attempt per failed check: if the recharge pack is smaller than the
// shortfall, the caller's re-evaluation still fails and no further charge
// is made inside the throttle window. All failures are logged, never
// surfaced.
func (s *service) attemptRecharge(ctx context.Context, subjectID uuid.UUID, profile Profile) bool {
	if !profile.Tier.IsPaid() {
		return false
	}
	if profile.PaymentRef == "" {
		s.log.DebugContext(ctx, "auto-recharge skipped: no stored payment instrument",
			"subject_id", subjectID)
		return false
	}

	acquired, err := s.store.TryMarkRechargeAttempt(ctx, subjectID, s.now(), s.rechargeThrottle)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to mark recharge attempt",
			"subject_id", subjectID, "error", err)
		return false
	}
	if !acquired {
		s.log.DebugContext(ctx, "auto-recharge throttled",
			"subject_id", subjectID, "window", s.rechargeThrottle)
		return false
	}

	// The payment provider is the only unbounded external call on the
	// check path, so it gets its own timeout.
	chargeCtx, cancel := context.WithTimeout(ctx, s.chargeTimeout)
	defer cancel()

	result, err := s.provider.Charge(chargeCtx, payment.ChargeRequest{
		CustomerRef:    profile.PaymentRef,
		Amount:         payment.Money{Amount: s.rechargeCredits, Currency: "USD"},
		Description:    fmt.Sprintf("AI credits auto-recharge $%s", dollars(s.rechargeCredits)),
		IdempotencyKey: uuid.NewString(),
		Metadata: map[string]string{
			"subject_id": subjectID.String(),
			"credits":    strconv.FormatInt(s.rechargeCredits, 10),
			"type":       "auto_recharge",
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "auto-recharge charge failed",
			"subject_id", subjectID, "error", err)
		return false
	}
	if !result.Succeeded() {
		s.log.WarnContext(ctx, "auto-recharge charge declined",
			"subject_id", subjectID, "status", result.Status, "reference", result.Reference)
		return false
	}

	if err := s.store.IncrementTopUp(ctx, subjectID, s.rechargeCredits); err != nil {
		// The charge went through but the balance was not credited; fail
		// closed and leave reconciliation to the provider reference.
		s.log.ErrorContext(ctx, "auto-recharge succeeded but top-up write failed",
			"subject_id", subjectID, "reference", result.Reference, "error", err)
		return false
	}

	s.log.InfoContext(ctx, "auto-recharge succeeded",
		"subject_id", subjectID, "credits", s.rechargeCredits, "reference", result.Reference)
	return true
}
