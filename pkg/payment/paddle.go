package payment

import (
	"context"
	"fmt"
	"strings"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"
)

// PaddleConfig holds configuration for the Paddle charge provider.
// RechargePriceID is the catalog price for one credit top-up pack; using a
// catalog price keeps the charged amount under Paddle's control and out of
// request payloads.
type PaddleConfig struct {
	APIKey          string `env:"PADDLE_API_KEY,required"`
	Environment     string `env:"PADDLE_ENVIRONMENT" envDefault:"production"`
	RechargePriceID string `env:"PADDLE_RECHARGE_PRICE_ID,required"`
}

// PaddleProvider implements Provider using Paddle transactions billed
// automatically against the customer's saved payment method.
type PaddleProvider struct {
	client  *paddle.SDK
	priceID string
}

// NewPaddleProvider creates a Paddle-backed charge provider.
func NewPaddleProvider(cfg PaddleConfig) (*PaddleProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.RechargePriceID == "" {
		return nil, ErrMissingPriceID
	}

	var client *paddle.SDK
	var err error

	switch strings.ToLower(cfg.Environment) {
	case "sandbox":
		client, err = paddle.NewSandbox(cfg.APIKey)
	case "production", "":
		client, err = paddle.New(cfg.APIKey)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidEnvironment, cfg.Environment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create paddle client: %w", err)
	}

	return &PaddleProvider{client: client, priceID: cfg.RechargePriceID}, nil
}

// Charge creates an automatically collected transaction for the configured
// recharge price. Paddle bills the customer's default saved payment method
// off-session; no checkout page is involved.
func (p *PaddleProvider) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.CustomerRef == "" {
		return nil, ErrMissingCustomerRef
	}

	item := paddle.NewCreateTransactionItemsTransactionItemFromCatalog(&paddle.TransactionItemFromCatalog{
		PriceID:  p.priceID,
		Quantity: 1,
	})

	customData := paddle.CustomData{}
	for k, v := range req.Metadata {
		customData[k] = v
	}
	if req.IdempotencyKey != "" {
		customData["idempotency_key"] = req.IdempotencyKey
	}

	transaction, err := p.client.TransactionsClient.CreateTransaction(ctx, &paddle.CreateTransactionRequest{
		Items:          []paddle.CreateTransactionItems{*item},
		CustomerID:     paddle.PtrTo(req.CustomerRef),
		CollectionMode: paddle.PtrTo(paddle.CollectionModeAutomatic),
		CustomData:     customData,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChargeFailed, err)
	}

	result := &ChargeResult{Reference: transaction.ID}
	switch transaction.Status {
	case paddle.TransactionStatusBilled, paddle.TransactionStatusPaid, paddle.TransactionStatusCompleted:
		result.Status = StatusSucceeded
	default:
		// Draft, ready, canceled, or past_due: the saved instrument was
		// not billed, so treat it as a declined charge rather than an error.
		result.Status = StatusFailed
	}
	return result, nil
}
