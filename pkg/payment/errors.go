package payment

import "errors"

var (
	ErrMissingAPIKey      = errors.New("payment: provider API key is required")
	ErrMissingPriceID     = errors.New("payment: recharge price ID is required")
	ErrInvalidEnvironment = errors.New("payment: invalid provider environment")
	ErrMissingCustomerRef = errors.New("payment: customer reference is required")
	ErrChargeFailed       = errors.New("payment: charge request failed")
)
