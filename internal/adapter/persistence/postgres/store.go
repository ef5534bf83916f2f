// Package postgres stores the fulfillment model in PostgreSQL through pgx.
// Multi-row writes run inside one transaction and use version-checked
// UPDATEs, so a lost race shows up as zero affected rows.
package postgres

import (
	"context"
	"encoding/json"

	"fulfillment_engine/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// querier is the part shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{s: s}
}

func (s *Store) Items() *OrderItemRepository {
	return &OrderItemRepository{s: s}
}

func (s *Store) Routing() *RoutingEventRepository {
	return &RoutingEventRepository{s: s}
}

func (s *Store) Extensions() *ExtensionRequestRepository {
	return &ExtensionRequestRepository{s: s}
}

func (s *Store) Invoices() *InvoiceRepository {
	return &InvoiceRepository{s: s}
}

func (s *Store) Commissions() *CommissionRepository {
	return &CommissionRepository{s: s}
}

func (s *Store) Workflows() *WorkflowRepository {
	return &WorkflowRepository{s: s}
}

// InTransaction runs fn in a transaction, committing when it returns nil.
func (s *Store) InTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, s.db, fn)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// requireOne turns a zero-row versioned write into a concurrency error.
func requireOne(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrConcurrentModification
	}
	return nil
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "encode json column")
	}
	return string(b), nil
}

func fromJSON(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decode json column")
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
