package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

type fakeGetter struct {
	gotID int
	resp  *payment.Response
	err   error
}

func (f *fakeGetter) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

func TestNewMercadoPagoGatewayRequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, zerolog.Nop())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestMockModeApprovesAndEchoesReference(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := g.GetPayment(context.Background(), " inv-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != "approved" || p.ExternalReference != "inv-1" || len(p.Raw) == 0 {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestGetPaymentMapsSDKResponse(t *testing.T) {
	fake := &fakeGetter{resp: &payment.Response{ID: 42, Status: "approved", ExternalReference: "inv-9"}}
	g := &MercadoPagoGateway{client: fake, log: zerolog.Nop()}

	p, err := g.GetPayment(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.gotID != 42 {
		t.Fatalf("expected sdk call with 42, got %d", fake.gotID)
	}
	if p.ProviderPaymentID != "42" || p.Status != "approved" || p.ExternalReference != "inv-9" {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestGetPaymentRejectsNonNumericID(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakeGetter{}, log: zerolog.Nop()}
	if _, err := g.GetPayment(context.Background(), "abc"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestGetPaymentPropagatesSDKError(t *testing.T) {
	boom := errors.New("timeout")
	g := &MercadoPagoGateway{client: &fakeGetter{err: boom}, log: zerolog.Nop()}
	if _, err := g.GetPayment(context.Background(), "7"); !errors.Is(err, boom) {
		t.Fatalf("expected sdk error, got %v", err)
	}
}

func TestUnconfiguredGateway(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}
