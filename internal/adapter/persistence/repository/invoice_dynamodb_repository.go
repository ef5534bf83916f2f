package repository

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// InvoiceDynamoRepository persists invoices. The order row points at its
// active invoice through active_invoice_id.
type InvoiceDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	tx, err := r.createWrites(inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := r.s.transact(ctx, tx); err != nil {
		if !isConditionFailure(err) {
			return entities.Invoice{}, errors.Wrap(err, "create invoice")
		}
		order, getErr := r.s.Orders().GetByID(ctx, inv.OrderID)
		if getErr != nil {
			return entities.Invoice{}, getErr
		}
		if order.ActiveInvoiceID != "" {
			return entities.Invoice{}, entities.NewConflictError("invoice", inv.OrderID, "order already has an active invoice")
		}
		return entities.Invoice{}, entities.ErrConcurrentModification
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) createWrites(inv entities.Invoice) ([]types.TransactWriteItem, error) {
	putInv, err := putNew(r.s.tables.Invoices, toInvoiceRecord(inv))
	if err != nil {
		return nil, err
	}
	link := types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.s.tables.Orders),
		Key:                 idKey(inv.OrderID),
		UpdateExpression:    aws.String("SET #active = :invoice_id, #version = #version + :one, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#active)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active_invoice_id",
			"#version":    "version",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id": &types.AttributeValueMemberS{Value: inv.ID},
			":one":        versionValue(1),
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(inv.CreatedAt)},
		},
	}}
	return []types.TransactWriteItem{putInv, link}, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var rec invoiceRecord
	found, err := r.s.getByID(ctx, r.s.tables.Invoices, id, &rec)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceRecord(rec), nil
}

func (r *InvoiceDynamoRepository) GetActiveByOrderID(ctx context.Context, orderID string) (entities.Invoice, error) {
	order, err := r.s.Orders().GetByID(ctx, orderID)
	if err != nil || order.ActiveInvoiceID == "" {
		return entities.Invoice{}, err
	}
	return r.GetByID(ctx, order.ActiveInvoiceID)
}

// MarkPaid flips the invoice and inserts every commission row in a single
// transaction. Commission ids are deterministic, so a replayed confirmation
// fails the attribute_not_exists check instead of duplicating rows.
func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, inv entities.Invoice, commissions []entities.Commission) error {
	tx, err := r.markPaidWrites(inv, commissions)
	if err != nil {
		return err
	}
	if err := r.s.transact(ctx, tx); err != nil {
		if isConditionFailure(err) {
			return entities.ErrConcurrentModification
		}
		return errors.Wrap(err, "mark invoice paid")
	}
	return nil
}

func (r *InvoiceDynamoRepository) markPaidWrites(inv entities.Invoice, commissions []entities.Commission) ([]types.TransactWriteItem, error) {
	av, err := marshalMap(toInvoiceRecord(inv))
	if err != nil {
		return nil, err
	}
	tx := make([]types.TransactWriteItem, 0, len(commissions)+1)
	tx = append(tx, putVersioned(r.s.tables.Invoices, av, inv.Version,
		"#status = :issued", map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":issued": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusIssued)}}))
	for _, c := range commissions {
		put, err := putNew(r.s.tables.Commissions, toCommissionRecord(c))
		if err != nil {
			return nil, err
		}
		tx = append(tx, put)
	}
	return tx, nil
}
