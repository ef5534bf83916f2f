package handlers

import (
	"errors"
	"net/http"
	"testing"

	"fulfillment_engine/internal/adapter/http/handlers/mocks"
	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPaymentWebhookHandler_Receive(t *testing.T) {
	t.Run("non payment topic ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentWebhookHandler(mocks.NewMockIPaymentConfirmationUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{"type":"merchant_order","data":{"id":"77"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeObject(t, w); body["ignored"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentWebhookHandler(mocks.NewMockIPaymentConfirmationUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentWebhookHandler(mocks.NewMockIPaymentConfirmationUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("numeric id in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().Confirm(gomock.Any(), "123456").Return(usecase.PaymentConfirmation{
			ProviderPaymentID: "123456",
			ProviderStatus:    usecase.ProviderStatusApproved,
			InvoiceID:         "inv-1",
			Applied:           true,
			Commissions:       []entities.Commission{{ID: "c-1", UserID: "sales-1", CommissionType: entities.CommissionTypeSale}},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","action":"payment.updated","data":{"id":123456}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeObject(t, w)
		cs, _ := body["commissions"].([]any)
		if body["applied"] != true || body["invoice_id"] != "inv-1" || len(cs) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("query only notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().Confirm(gomock.Any(), "987").Return(usecase.PaymentConfirmation{ProviderPaymentID: "987", ProviderStatus: "pending"}, nil)

		w := serve(r, http.MethodPost, "/v1/payments/webhook?topic=payment&id=987", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeObject(t, w); body["applied"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().Confirm(gomock.Any(), "1").Return(usecase.PaymentConfirmation{}, usecase.ErrPaymentGatewayMissing)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{"id":"1"}}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := newTestRouter()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().Confirm(gomock.Any(), "1").Return(usecase.PaymentConfirmation{}, errors.New("timeout"))

		w := serve(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{"id":"1"}}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
