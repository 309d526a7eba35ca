package payment

import "context"

// Provider abstracts an off-session charge against a customer's stored
// payment instrument. The engine needs only a customer reference and a
// synchronous success/failure result; hosted checkout, instrument
// collection, and dunning stay with the payment provider.
type Provider interface {
	// Charge bills the customer's stored payment method without user
	// interaction. A declined charge returns a *ChargeResult with
	// StatusFailed and a nil error; errors are reserved for transport and
	// configuration failures.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Money is a monetary amount in the smallest currency unit.
// $10.00 USD is Amount: 1000, Currency: "USD".
type Money struct {
	Amount   int64
	Currency string
}

// ChargeRequest describes a single off-session charge.
type ChargeRequest struct {
	CustomerRef    string // provider's customer reference with a stored instrument
	Amount         Money
	Description    string
	IdempotencyKey string            // dedupes retried requests at the provider
	Metadata       map[string]string // propagated to the provider transaction
}

// ChargeStatus is the normalized outcome of a charge.
type ChargeStatus string

const (
	StatusSucceeded ChargeStatus = "succeeded"
	StatusFailed    ChargeStatus = "failed"
)

// ChargeResult reports the outcome of a charge attempt.
type ChargeResult struct {
	Status    ChargeStatus
	Reference string // provider's transaction identifier
}

// Succeeded reports whether the charge went through.
func (r *ChargeResult) Succeeded() bool {
	return r != nil && r.Status == StatusSucceeded
}
