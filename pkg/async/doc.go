// Package async provides a helper for best-effort side tasks: work spawned
// off the request path whose outcome must never block or fail the primary
// operation, such as notification dispatch.
//
// Usage:
//
//	async.Fire(context.WithoutCancel(ctx), log, func(ctx context.Context) error {
//		return mailer.SendEmail(ctx, params)
//	})
//
// The task's error is logged and discarded; panics are recovered.
package async
