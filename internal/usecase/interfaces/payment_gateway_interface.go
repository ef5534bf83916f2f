package interfaces

import (
	"context"
	"encoding/json"
)

// ProviderPayment is what the gateway reports about a payment.
// ExternalReference carries the invoice id set at checkout.
type ProviderPayment struct {
	ProviderPaymentID string
	Status            string
	ExternalReference string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}
