package entities

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionType string

const (
	CommissionTypeSale    CommissionType = "sale"
	CommissionTypeService CommissionType = "service"
	CommissionTypeProduct CommissionType = "product"
)

type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusPaid     CommissionStatus = "paid"
)

// commissionNamespace scopes deterministic commission ids.
var commissionNamespace = uuid.MustParse("6f1c7f8e-2a57-4c1e-9d4b-6a0b5e3c2f10")

// Commission is an amount owed to a staff member for an invoice line.
//
// The ID is derived from (invoice, user, line) so a retried payment
// confirmation cannot create a second record for the same line.
type Commission struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	InvoiceID      string           `json:"invoice_id"`
	OrderID        string           `json:"order_id"`
	LineItemID     string           `json:"line_item_id,omitempty"`
	CommissionType CommissionType   `json:"commission_type"`
	BaseAmount     int64            `json:"base_amount"`
	Percentage     float64          `json:"percentage"`
	Amount         int64            `json:"amount"`
	Status         CommissionStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// CommissionID returns the stable id for a commission line.
func CommissionID(invoiceID, userID, lineRef string) string {
	return uuid.NewSHA1(commissionNamespace, []byte(invoiceID+"|"+userID+"|"+lineRef)).String()
}

// CommissionAmount computes base * percent / 100 rounded half away from zero
// to whole minor units.
func CommissionAmount(base int64, percent float64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// SortCommissions orders commissions by creation time, sale rows first,
// then by line and user.
func SortCommissions(cs []Commission) {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].CreatedAt.Before(cs[j].CreatedAt)
		}
		if cs[i].CommissionType != cs[j].CommissionType {
			return cs[i].CommissionType == CommissionTypeSale
		}
		if cs[i].LineItemID != cs[j].LineItemID {
			return cs[i].LineItemID < cs[j].LineItemID
		}
		return cs[i].UserID < cs[j].UserID
	})
}
