package payments

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentGetter is the part of payment.Client the gateway calls.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway reads payment state from Mercado Pago. The checkout
// stores the invoice id in the payment's external_reference.
//
// In mock mode no request leaves the process: every payment is reported as
// approved and its id is used as the external reference, so a webhook for
// payment "inv-1" settles invoice "inv-1".
type MercadoPagoGateway struct {
	client   paymentGetter
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, log zerolog.Logger) (*MercadoPagoGateway, error) {
	log = log.With().Str("component", "mercadopago").Logger()
	if mock {
		log.Warn().Msg("payment gateway mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "mercado pago sdk config")
	}
	log.Info().Msg("Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if g != nil && g.mockMode {
		raw, err := json.Marshal(map[string]string{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": providerPaymentID,
		})
		if err != nil {
			return interfaces.ProviderPayment{}, errors.Wrap(err, "mock payment")
		}
		g.log.Debug().Str("payment_id", providerPaymentID).Msg("mock payment lookup")
		return interfaces.ProviderPayment{
			ProviderPaymentID: providerPaymentID,
			Status:            "approved",
			ExternalReference: providerPaymentID,
			Raw:               raw,
		}, nil
	}
	if g == nil || g.client == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.ProviderPayment{}, errors.Wrapf(err, "invalid mercado pago payment id %q", providerPaymentID)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.log.Error().Err(err).Str("payment_id", providerPaymentID).Msg("sdk get payment failed")
		return interfaces.ProviderPayment{}, errors.Wrap(err, "get mercado pago payment")
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, errors.Wrap(err, "encode mercado pago payment")
	}
	g.log.Info().Int("payment_id", resp.ID).Str("status", resp.Status).Msg("payment fetched")
	return interfaces.ProviderPayment{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}, nil
}
