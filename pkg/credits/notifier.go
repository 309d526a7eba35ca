package credits

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/creditkit/pkg/email"
)

// exhaustedPrinter formats credit amounts with thousands separators for
// email copy. Balance arithmetic never goes through it.
var exhaustedPrinter = message.NewPrinter(language.English)

// notifyExhausted sends one rate-limited "credits exhausted" email. The
// throttle marker is a conditional store write, so concurrent failed
// checks produce at most one dispatch per window. Runs as a best-effort
// side task; the returned error is only ever logged by the caller.
func (s *service) notifyExhausted(ctx context.Context, subjectID uuid.UUID, profile Profile, result CheckResult) error {
	acquired, err := s.store.TryMarkExhaustionNotice(ctx, subjectID, s.now(), s.noticeThrottle)
	if err != nil {
		return fmt.Errorf("mark exhaustion notice: %w", err)
	}
	if !acquired {
		return nil
	}

	if profile.Email == "" {
		s.log.DebugContext(ctx, "exhaustion notice skipped: no email address",
			"subject_id", subjectID)
		return nil
	}

	plan := s.catalog.Get(profile.Tier)
	if err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   profile.Email,
		Subject:  "Your AI credits are used up",
		BodyHTML: exhaustedEmailBody(profile.Name, plan.Name, result),
		Tag:      "credits-exhausted",
	}); err != nil {
		return fmt.Errorf("send exhaustion notice: %w", err)
	}

	s.log.InfoContext(ctx, "exhaustion notice sent",
		"subject_id", subjectID, "email", profile.Email)
	return nil
}

func exhaustedEmailBody(name, planName string, result CheckResult) string {
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}

	return fmt.Sprintf(`<p>%s,</p>
<p>Your AI credits for the current period are used up. You have used %s of %s credits on the %s plan.</p>
<p>To keep using AI features you can top up your balance or upgrade to a plan with a larger allowance.</p>
<p>Your credits also renew automatically at the start of your next billing period.</p>`,
		greeting,
		exhaustedPrinter.Sprintf("%d", result.Used),
		exhaustedPrinter.Sprintf("%d", result.Limit),
		planName,
	)
}
