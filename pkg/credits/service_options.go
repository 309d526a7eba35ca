package credits

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/creditkit/pkg/email"
	"github.com/dmitrymomot/creditkit/pkg/payment"
)

// ServiceOption configures optional service behavior.
type ServiceOption func(*service)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests that exercise
// period rollover and throttle windows with fixed times.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithModelCosts replaces the built-in model cost table. Unknown models
// still resolve to DefaultModelCost.
func WithModelCosts(costs map[string]int64) ServiceOption {
	return func(s *service) {
		if costs != nil {
			s.costs = costs
		}
	}
}

// WithGate replaces the default provider gate (Anthropic restricted to
// Pro and above).
func WithGate(gate *Gate) ServiceOption {
	return func(s *service) {
		if gate != nil {
			s.gate = gate
		}
	}
}

// WithAutoRecharge enables one throttled off-session charge when a check
// comes up short for a paid-tier subject. The provider charges a fixed
// recharge pack; credits is the top-up granted on success.
func WithAutoRecharge(provider payment.Provider) ServiceOption {
	return func(s *service) {
		s.provider = provider
	}
}

// WithRechargeCredits overrides the credits granted per successful
// auto-recharge. Default is 1000 credits ($10).
func WithRechargeCredits(credits int64) ServiceOption {
	return func(s *service) {
		if credits > 0 {
			s.rechargeCredits = credits
		}
	}
}

// WithRechargeThrottle overrides the minimum interval between recharge
// attempts for one subject. Default is one hour.
func WithRechargeThrottle(window time.Duration) ServiceOption {
	return func(s *service) {
		if window > 0 {
			s.rechargeThrottle = window
		}
	}
}

// WithChargeTimeout bounds the payment provider call, the only unbounded
// external dependency on the check path. Default is 30 seconds.
func WithChargeTimeout(timeout time.Duration) ServiceOption {
	return func(s *service) {
		if timeout > 0 {
			s.chargeTimeout = timeout
		}
	}
}

// WithExhaustionNotices enables the rate-limited "credits exhausted" email
// sent when a failed check is not resolved by recharge.
func WithExhaustionNotices(sender email.EmailSender) ServiceOption {
	return func(s *service) {
		s.sender = sender
	}
}

// WithNoticeThrottle overrides the minimum interval between exhaustion
// notices for one subject. Default is 24 hours.
func WithNoticeThrottle(window time.Duration) ServiceOption {
	return func(s *service) {
		if window > 0 {
			s.noticeThrottle = window
		}
	}
}
