package postgres

import (
	"context"

	"github.com/pkg/errors"
)

// schema is idempotent. The partial unique indexes back the
// one-open-routing-event, one-pending-extension and one-active-invoice rules.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id                   TEXT PRIMARY KEY,
		customer_id          TEXT NOT NULL,
		sales_rep_id         TEXT,
		workflow_id          TEXT,
		total_amount         BIGINT NOT NULL,
		due_at               TIMESTAMPTZ,
		pending_extension_id TEXT,
		active_invoice_id    TEXT,
		version              INTEGER NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id                    TEXT PRIMARY KEY,
		order_id              TEXT NOT NULL REFERENCES orders(id),
		parent_item_id        TEXT,
		line_number           INTEGER NOT NULL,
		item_type             TEXT NOT NULL,
		item_code             TEXT NOT NULL,
		name                  TEXT NOT NULL,
		quantity              INTEGER NOT NULL,
		unit_price            BIGINT NOT NULL,
		total_price           BIGINT NOT NULL,
		is_customer_supplied  BOOLEAN NOT NULL DEFAULT FALSE,
		status                TEXT NOT NULL,
		current_department_id TEXT,
		open_routing_event_id TEXT,
		technicians           JSONB NOT NULL DEFAULT '[]',
		workflow_id           TEXT,
		workflow_step_index   INTEGER NOT NULL DEFAULT -1,
		note                  TEXT,
		status_reason         TEXT,
		started_at            TIMESTAMPTZ,
		completed_at          TIMESTAMPTZ,
		version               INTEGER NOT NULL,
		created_at            TIMESTAMPTZ NOT NULL,
		updated_at            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS order_items_order_id_idx ON order_items (order_id)`,
	`CREATE TABLE IF NOT EXISTS routing_events (
		id                 TEXT PRIMARY KEY,
		order_item_id      TEXT NOT NULL REFERENCES order_items(id),
		from_department_id TEXT,
		to_department_id   TEXT NOT NULL,
		reason             TEXT NOT NULL,
		deadline           TIMESTAMPTZ NOT NULL,
		status             TEXT NOT NULL,
		created_by         TEXT,
		created_at         TIMESTAMPTZ NOT NULL,
		closed_at          TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS routing_events_one_open_idx ON routing_events (order_item_id) WHERE status = 'open'`,
	`CREATE TABLE IF NOT EXISTS extension_requests (
		id              TEXT PRIMARY KEY,
		order_id        TEXT NOT NULL REFERENCES orders(id),
		requested_by    TEXT,
		reason          TEXT NOT NULL,
		status          TEXT NOT NULL,
		current_due_at  TIMESTAMPTZ,
		new_due_at      TIMESTAMPTZ,
		customer_result TEXT,
		valid_reason    BOOLEAN,
		resolved_by     TEXT,
		approved_by     TEXT,
		approved_at     TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS extension_requests_one_pending_idx ON extension_requests (order_id) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders(id),
		amount     BIGINT NOT NULL,
		status     TEXT NOT NULL,
		paid_at    TIMESTAMPTZ,
		version    INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS invoices_one_active_idx ON invoices (order_id) WHERE status IN ('issued', 'paid')`,
	`CREATE TABLE IF NOT EXISTS commissions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		invoice_id      TEXT NOT NULL REFERENCES invoices(id),
		order_id        TEXT NOT NULL,
		line_item_id    TEXT,
		commission_type TEXT NOT NULL,
		base_amount     BIGINT NOT NULL,
		percentage      DOUBLE PRECISION NOT NULL,
		amount          BIGINT NOT NULL,
		status          TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS commissions_invoice_id_idx ON commissions (invoice_id)`,
	`CREATE INDEX IF NOT EXISTS commissions_user_id_idx ON commissions (user_id)`,
	`CREATE TABLE IF NOT EXISTS workflows (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		steps      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the tables and indexes if they are missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "apply schema")
		}
	}
	return nil
}
