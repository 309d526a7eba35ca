package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/creditkit/pkg/payment"
)

func TestNewPaddleProvider_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()
		_, err := payment.NewPaddleProvider(payment.PaddleConfig{RechargePriceID: "pri_123"})
		assert.ErrorIs(t, err, payment.ErrMissingAPIKey)
	})

	t.Run("missing price id", func(t *testing.T) {
		t.Parallel()
		_, err := payment.NewPaddleProvider(payment.PaddleConfig{APIKey: "key"})
		assert.ErrorIs(t, err, payment.ErrMissingPriceID)
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Parallel()
		_, err := payment.NewPaddleProvider(payment.PaddleConfig{
			APIKey:          "key",
			RechargePriceID: "pri_123",
			Environment:     "staging",
		})
		assert.ErrorIs(t, err, payment.ErrInvalidEnvironment)
	})

	t.Run("sandbox accepted", func(t *testing.T) {
		t.Parallel()
		provider, err := payment.NewPaddleProvider(payment.PaddleConfig{
			APIKey:          "key",
			RechargePriceID: "pri_123",
			Environment:     "sandbox",
		})
		assert.NoError(t, err)
		assert.NotNil(t, provider)
	})
}

func TestChargeResult_Succeeded(t *testing.T) {
	t.Parallel()

	assert.True(t, (&payment.ChargeResult{Status: payment.StatusSucceeded}).Succeeded())
	assert.False(t, (&payment.ChargeResult{Status: payment.StatusFailed}).Succeeded())

	var nilResult *payment.ChargeResult
	assert.False(t, nilResult.Succeeded())
}
