package email

import (
	"context"
	"log/slog"
)

// LogSender implements EmailSender for development and tests: it logs the
// message instead of delivering it, so no provider credentials are needed
// locally.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender that writes emails to the logger.
// A nil logger falls back to slog.Default().
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email dispatched (log sender)",
		"send_to", params.SendTo,
		"subject", params.Subject,
		"tag", params.Tag,
		"body_bytes", len(params.BodyHTML),
	)
	return nil
}
