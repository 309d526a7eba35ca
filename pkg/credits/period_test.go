package credits_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/creditkit/pkg/credits"
)

func TestUsageRecordNormalizedAt(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	subjectID := uuid.New()

	t.Run("no rollover within period", func(t *testing.T) {
		t.Parallel()

		record := credits.UsageRecord{
			SubjectID:   subjectID,
			PeriodStart: start,
			Consumed:    100,
			TopUp:       50,
		}

		normalized, rolled := record.NormalizedAt(start.Add(15 * 24 * time.Hour))
		assert.False(t, rolled)
		assert.Equal(t, record, normalized)
	})

	t.Run("no rollover at exact period boundary", func(t *testing.T) {
		t.Parallel()

		record := credits.UsageRecord{SubjectID: subjectID, PeriodStart: start, Consumed: 100}

		_, rolled := record.NormalizedAt(start.Add(credits.PeriodLength))
		assert.False(t, rolled)
	})

	t.Run("rollover resets consumed and keeps top-up", func(t *testing.T) {
		t.Parallel()

		rechargedAt := start.Add(10 * 24 * time.Hour)
		notifiedAt := start.Add(12 * 24 * time.Hour)
		record := credits.UsageRecord{
			SubjectID:            subjectID,
			PeriodStart:          start,
			Consumed:             250,
			TopUp:                1000,
			LastRechargeAttempt:  &rechargedAt,
			LastExhaustionNotice: &notifiedAt,
		}

		now := start.Add(credits.PeriodLength + time.Minute)
		normalized, rolled := record.NormalizedAt(now)
		require.True(t, rolled)

		assert.Equal(t, now, normalized.PeriodStart)
		assert.Equal(t, int64(0), normalized.Consumed)
		assert.Equal(t, int64(1000), normalized.TopUp)
		assert.Equal(t, &rechargedAt, normalized.LastRechargeAttempt)
		assert.Equal(t, &notifiedAt, normalized.LastExhaustionNotice)
	})

	t.Run("rollover is idempotent within the new period", func(t *testing.T) {
		t.Parallel()

		record := credits.UsageRecord{SubjectID: subjectID, PeriodStart: start, Consumed: 500}

		now := start.Add(credits.PeriodLength + time.Hour)
		first, rolled := record.NormalizedAt(now)
		require.True(t, rolled)

		second, rolled := first.NormalizedAt(now.Add(time.Hour))
		assert.False(t, rolled)
		assert.Equal(t, first, second)
	})

	t.Run("period start only moves forward", func(t *testing.T) {
		t.Parallel()

		record := credits.UsageRecord{SubjectID: subjectID, PeriodStart: start}

		// A long gap rolls into a single fresh period anchored at now,
		// not a chain of intermediate periods.
		now := start.Add(5 * credits.PeriodLength)
		normalized, rolled := record.NormalizedAt(now)
		require.True(t, rolled)
		assert.Equal(t, now, normalized.PeriodStart)
		assert.True(t, normalized.PeriodStart.After(record.PeriodStart))
	})
}

func TestUsageRecordPeriodEnd(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	record := credits.UsageRecord{PeriodStart: start}

	assert.Equal(t, start.Add(30*24*time.Hour), record.PeriodEnd())
}
