package credits

import "errors"

var (
	// Caller-visible denial reasons.
	ErrInsufficientCredits = errors.New("credits: insufficient credit balance")
	ErrProviderRestricted  = errors.New("credits: provider restricted for current plan")
	ErrCheckUnavailable    = errors.New("credits: balance check temporarily unavailable")

	// Persistence failures.
	ErrUsageRecordNotFound = errors.New("credits: usage record not found")
	ErrFailedToLoadUsage   = errors.New("credits: failed to load usage record")
	ErrFailedToSaveUsage   = errors.New("credits: failed to save usage record")

	// Input validation.
	ErrInvalidTopUpAmount = errors.New("credits: top-up amount must be positive")
)
