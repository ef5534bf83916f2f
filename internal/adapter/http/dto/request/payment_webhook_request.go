package request

import (
	"fmt"
	"strings"
)

// PaymentWebhookRequest is the Mercado Pago notification body. Only the
// payment id is trusted; status is re-read from the provider.
type PaymentWebhookRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID any `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns data.id from the body, falling back to the
// data.id / id query parameters used by the legacy IPN format.
func (r PaymentWebhookRequest) ResolvePaymentID(query func(string) string) string {
	switch v := r.Data.ID.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	if query == nil {
		return ""
	}
	for _, key := range []string{"data.id", "id"} {
		if s := strings.TrimSpace(query(key)); s != "" {
			return s
		}
	}
	return ""
}

// IsPayment reports whether the notification concerns a payment. An empty
// type is accepted for the query-only IPN format.
func (r PaymentWebhookRequest) IsPayment(query func(string) string) bool {
	t := r.Type
	if t == "" && query != nil {
		t = query("type")
		if t == "" {
			t = query("topic")
		}
	}
	return t == "" || t == "payment"
}
