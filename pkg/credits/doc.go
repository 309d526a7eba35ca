// Package credits meters AI usage against plan-based credit allowances.
// One credit is the smallest monetary-equivalent unit ($0.01); every model
// call costs a fixed number of credits and every tier grants an allowance
// per 30-day accounting period, on top of a standing top-up balance.
//
// The flow is check, act, deduct:
//
//	result := svc.Check(ctx, subjectID, "gpt-4o", "openai")
//	if !result.Allowed {
//		return result.Denial()
//	}
//	// ... perform the model call ...
//	if err := svc.Deduct(ctx, subjectID, "gpt-4o"); err != nil {
//		return err
//	}
//
// Check is a dry-run. It resolves the model cost, gates restricted
// providers by tier, lazily rolls the accounting period over, and
// evaluates allowance + top-up against consumption. When a paid subject
// comes up short, the service makes at most one throttled off-session
// charge through the configured payment provider and re-evaluates; an
// unresolved shortfall fires a rate-limited exhaustion email as a
// best-effort side task and the check is denied with an actionable
// message. Internal failures fail closed: access is never granted when
// consumption cannot be recorded.
//
// Deduct trusts the caller's prior Check and does not re-validate
// sufficiency; call it only after the metered action actually succeeded.
//
// Storage is pluggable through UsageStore. MemoryStore serves tests and
// single-process setups; PostgresStore, RedisStore, and MongoStore
// implement the same contract on their native atomic primitives, so
// concurrent requests for one subject cannot double-spend quota or
// double-charge a recharge.
package credits
