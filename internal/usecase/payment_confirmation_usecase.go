package usecase

import (
	"context"
	"strings"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// ProviderStatusApproved is the provider status that settles an invoice.
const ProviderStatusApproved = "approved"

// PaymentConfirmation reports what a provider notification did.
type PaymentConfirmation struct {
	ProviderPaymentID string
	ProviderStatus    string
	InvoiceID         string
	Applied           bool
	Commissions       []entities.Commission
}

type IPaymentConfirmationUseCase interface {
	Confirm(ctx context.Context, providerPaymentID string) (PaymentConfirmation, error)
}

// PaymentConfirmationUseCase looks a notified payment up at the provider and
// marks the referenced invoice paid once the provider approves it.
type PaymentConfirmationUseCase struct {
	gateway     interfaces.IPaymentGateway
	commissions ICommissionUseCase
	log         zerolog.Logger
}

var _ IPaymentConfirmationUseCase = (*PaymentConfirmationUseCase)(nil)

func NewPaymentConfirmationUseCase(gateway interfaces.IPaymentGateway, commissions ICommissionUseCase, log zerolog.Logger) *PaymentConfirmationUseCase {
	return &PaymentConfirmationUseCase{
		gateway:     gateway,
		commissions: commissions,
		log:         log.With().Str("component", "payment_confirmation").Logger(),
	}
}

func (u *PaymentConfirmationUseCase) Confirm(ctx context.Context, providerPaymentID string) (PaymentConfirmation, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return PaymentConfirmation{}, entities.NewValidationError("payment_id", "required")
	}
	if u.gateway == nil {
		return PaymentConfirmation{}, ErrPaymentGatewayMissing
	}

	p, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		return PaymentConfirmation{}, err
	}
	res := PaymentConfirmation{
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    p.Status,
		InvoiceID:         strings.TrimSpace(p.ExternalReference),
	}
	if p.Status != ProviderStatusApproved {
		u.log.Info().Str("payment_id", providerPaymentID).Str("status", p.Status).Msg("payment not approved, ignoring")
		return res, nil
	}
	if res.InvoiceID == "" {
		return PaymentConfirmation{}, entities.NewValidationError("external_reference", "approved payment does not reference an invoice")
	}

	comms, err := u.commissions.MarkInvoicePaid(ctx, res.InvoiceID)
	if err != nil {
		return PaymentConfirmation{}, err
	}
	res.Applied = true
	res.Commissions = comms
	return res, nil
}
