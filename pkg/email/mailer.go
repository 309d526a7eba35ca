package email

import (
	"context"
	"errors"
	"regexp"
)

// EmailSender dispatches transactional emails. Implementations must treat
// dispatch as fire-and-forget from the caller's perspective: slow or
// failing delivery is the sender's problem, not the caller's.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes a single outbound email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"` // optional, for provider-side analytics
}

// emailRegex is intentionally loose: it rejects obvious garbage while
// leaving real validation to the delivery provider.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the params before contacting the delivery provider.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		return errors.Join(ErrInvalidParams, errors.New("recipient address is invalid"))
	}
	if p.Subject == "" {
		return errors.Join(ErrInvalidParams, errors.New("subject is required"))
	}
	if p.BodyHTML == "" {
		return errors.Join(ErrInvalidParams, errors.New("body is required"))
	}
	return nil
}
