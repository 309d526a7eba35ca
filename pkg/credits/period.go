package credits

import "time"

// PeriodLength is the accounting window. Periods roll over lazily on
// access; there is no background scheduler.
const PeriodLength = 30 * 24 * time.Hour

// PeriodEnd returns the end of the record's current accounting window.
func (r UsageRecord) PeriodEnd() time.Time {
	return r.PeriodStart.Add(PeriodLength)
}

// NormalizedAt rolls the record into a fresh accounting period when the
// current one has elapsed. Consumed resets to zero; TopUp and both
// throttle markers are preserved. Pure: callers persist the result if it
// changed. The bool reports whether a rollover occurred.
//
// Rollover is idempotent within a period and PeriodStart only ever moves
// forward: calling NormalizedAt twice in a row changes nothing the second
// time until another full period elapses.
func (r UsageRecord) NormalizedAt(now time.Time) (UsageRecord, bool) {
	if now.Sub(r.PeriodStart) <= PeriodLength {
		return r, false
	}

	rolled := r
	rolled.PeriodStart = now
	rolled.Consumed = 0
	return rolled, true
}
