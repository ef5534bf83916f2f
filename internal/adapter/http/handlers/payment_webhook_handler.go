package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/request"
	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives Mercado Pago notifications.
type PaymentWebhookHandler struct {
	usecase usecase.IPaymentConfirmationUseCase
}

func NewPaymentWebhookHandler(uc usecase.IPaymentConfirmationUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

// Receive accepts both the JSON webhook and the query-only IPN format.
// Notifications that are not about payments are acknowledged and ignored.
//
// @Summary Mercado Pago payment notification
// @Tags payments
// @Accept json
// @Produce json
// @Param request body request.PaymentWebhookRequest true "payload"
// @Success 200 {object} response.PaymentConfirmationResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /payments/webhook [post]
func (h *PaymentWebhookHandler) Receive(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	var req request.PaymentWebhookRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			respondInvalidRequest(c, err)
			return
		}
	}

	if !req.IsPayment(c.Query) {
		c.JSON(http.StatusOK, gin.H{"ignored": true})
		return
	}
	paymentID := req.ResolvePaymentID(c.Query)
	if paymentID == "" {
		respondInvalidRequest(c, nil)
		return
	}

	result, err := h.usecase.Confirm(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentConfirmation(result))
}
