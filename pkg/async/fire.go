package async

import (
	"context"
	"log/slog"
)

// Fire runs fn in its own goroutine as a best-effort side task: the result
// is explicitly discarded and can never block or fail the caller. Errors
// and panics are logged and swallowed.
//
// Callers that outlive the originating request should pass
// context.WithoutCancel(ctx) so the task is not torn down when the request
// context is cancelled.
func Fire(ctx context.Context, log *slog.Logger, fn func(context.Context) error) {
	if fn == nil {
		return
	}
	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(ctx, "async side task panicked", "panic", r)
			}
		}()

		if err := fn(ctx); err != nil {
			log.ErrorContext(ctx, "async side task failed", "error", err)
		}
	}()
}
