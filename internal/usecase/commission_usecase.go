package usecase

import (
	"context"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ICommissionUseCase turns a paid invoice into commission records.
type ICommissionUseCase interface {
	MarkInvoicePaid(ctx context.Context, invoiceID string) ([]entities.Commission, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Commission, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Commission, error)
}

type CommissionUseCase struct {
	invoices    interfaces.IInvoiceRepository
	orders      interfaces.IOrderRepository
	items       interfaces.IOrderItemRepository
	commissions interfaces.ICommissionRepository
	salesRate   float64
	log         zerolog.Logger
	now         func() time.Time
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

// NewCommissionUseCase builds the engine. salesRate is a fraction of the
// order total, e.g. 0.05.
func NewCommissionUseCase(
	invoices interfaces.IInvoiceRepository,
	orders interfaces.IOrderRepository,
	items interfaces.IOrderItemRepository,
	commissions interfaces.ICommissionRepository,
	salesRate float64,
	log zerolog.Logger,
) *CommissionUseCase {
	return &CommissionUseCase{
		invoices:    invoices,
		orders:      orders,
		items:       items,
		commissions: commissions,
		salesRate:   salesRate,
		log:         log.With().Str("component", "commission").Logger(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// MarkInvoicePaid flips the invoice to paid and records its commissions in
// one write. Calling it again for a paid invoice returns the stored records.
func (u *CommissionUseCase) MarkInvoicePaid(ctx context.Context, invoiceID string) ([]entities.Commission, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, entities.NewValidationError("invoice_id", "required")
	}
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}

	switch inv.Status {
	case entities.InvoiceStatusPaid:
		u.log.Info().Str("invoice_id", inv.ID).Msg("invoice already paid, returning stored commissions")
		return u.commissions.ListByInvoiceID(ctx, inv.ID)
	case entities.InvoiceStatusCancelled:
		return nil, entities.NewInvalidTransitionError(inv.ID, string(inv.Status), string(entities.InvoiceStatusPaid))
	}

	existing, err := u.commissions.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	order, err := u.orders.GetByID(ctx, inv.OrderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	items, err := u.items.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	comms, err := ComputeCommissions(inv, order, items, u.salesRate, now)
	if err != nil {
		u.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("commission configuration rejected")
		return nil, err
	}
	if order.SalesRepID == "" {
		u.log.Warn().Str("order_id", order.ID).Msg("order has no sales rep, sales commission skipped")
	}

	inv.Status = entities.InvoiceStatusPaid
	inv.PaidAt = &now
	inv.UpdatedAt = now
	if err := u.invoices.MarkPaid(ctx, inv, comms); err != nil {
		if errors.Is(err, entities.ErrConcurrentModification) {
			if stored, ok := u.settledElsewhere(ctx, inv.ID); ok {
				return stored, nil
			}
		}
		return nil, errors.Wrap(err, "mark invoice paid")
	}

	u.log.Info().Str("invoice_id", inv.ID).Int("commissions", len(comms)).Msg("invoice paid")
	return comms, nil
}

// settledElsewhere reports whether a concurrent confirmation already paid the
// invoice, returning whatever records it stored. A paid invoice may have none.
func (u *CommissionUseCase) settledElsewhere(ctx context.Context, invoiceID string) ([]entities.Commission, bool) {
	current, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil || current.Status != entities.InvoiceStatusPaid {
		return nil, false
	}
	stored, err := u.commissions.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, false
	}
	u.log.Info().Str("invoice_id", invoiceID).Int("commissions", len(stored)).Msg("invoice paid by a concurrent confirmation")
	if stored == nil {
		stored = []entities.Commission{}
	}
	return stored, true
}

func (u *CommissionUseCase) ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Commission, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, entities.NewValidationError("invoice_id", "required")
	}
	return u.commissions.ListByInvoiceID(ctx, invoiceID)
}

func (u *CommissionUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Commission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entities.NewValidationError("user_id", "required")
	}
	return u.commissions.ListByUserID(ctx, userID)
}

// ComputeCommissions derives the commission set for a paid invoice.
//
//   - one sale commission for the order's sales rep, rate * order total
//   - one service commission per technician per completed, shop-supplied
//     service line with a positive percentage, unit_price * pct / 100
//
// Skipped and failed lines earn nothing. A technician above 100% on a line,
// or a line whose technicians sum above 100%, rejects the whole set.
func ComputeCommissions(inv entities.Invoice, order entities.Order, items []entities.OrderItem, salesRate float64, now time.Time) ([]entities.Commission, error) {
	var out []entities.Commission

	if order.SalesRepID != "" && salesRate > 0 {
		pct := decimal.NewFromFloat(salesRate).Mul(decimal.NewFromInt(100)).InexactFloat64()
		out = append(out, entities.Commission{
			ID:             entities.CommissionID(inv.ID, order.SalesRepID, order.ID),
			UserID:         order.SalesRepID,
			InvoiceID:      inv.ID,
			OrderID:        order.ID,
			CommissionType: entities.CommissionTypeSale,
			BaseAmount:     order.TotalAmount,
			Percentage:     pct,
			Amount:         entities.CommissionAmount(order.TotalAmount, pct),
			Status:         entities.CommissionStatusPending,
			CreatedAt:      now,
		})
	}

	for _, it := range items {
		if !it.IsService() || it.IsCustomerSupplied || it.Status != entities.ItemStatusCompleted {
			continue
		}
		for _, t := range it.AssignedTechnicians {
			if t.CommissionPercent > 100 {
				return nil, &entities.InvalidCommissionConfigurationError{
					LineItemID:   it.ID,
					TechnicianID: t.TechnicianID,
					Percent:      t.CommissionPercent,
				}
			}
		}
		if total := it.TechnicianPercentTotal(); total > 100 {
			return nil, &entities.InvalidCommissionConfigurationError{LineItemID: it.ID, Total: total}
		}
		for _, t := range it.AssignedTechnicians {
			if t.CommissionPercent <= 0 {
				continue
			}
			out = append(out, entities.Commission{
				ID:             entities.CommissionID(inv.ID, t.TechnicianID, it.ID),
				UserID:         t.TechnicianID,
				InvoiceID:      inv.ID,
				OrderID:        order.ID,
				LineItemID:     it.ID,
				CommissionType: entities.CommissionTypeService,
				BaseAmount:     it.UnitPrice,
				Percentage:     t.CommissionPercent,
				Amount:         entities.CommissionAmount(it.UnitPrice, t.CommissionPercent),
				Status:         entities.CommissionStatusPending,
				CreatedAt:      now,
			})
		}
	}
	return out, nil
}
