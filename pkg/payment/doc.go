// Package payment abstracts off-session charges against a customer's
// stored payment instrument.
//
// The Provider interface is deliberately minimal: one Charge call with a
// synchronous success/failure result. Checkout flows, payment method
// collection, and retries after declines belong to the billing layer, not
// to this package. The engine using it treats a declined charge the same
// as a transport failure: it degrades, it does not retry.
//
// PaddleProvider is the production implementation; it creates an
// automatically collected Paddle transaction for a configured catalog
// price, which Paddle bills to the customer's saved payment method.
package payment
