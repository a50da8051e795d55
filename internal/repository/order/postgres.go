package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const orderColumns = `
id::text, items, subtotal, shipping, tax, total, currency,
customer_name, customer_email, customer_note,
gateway_intent_id, COALESCE(gateway_status, ''), COALESCE(gateway_charge_id, ''),
COALESCE(receipt_email, ''), paid_at, status, created_at, updated_at`

func (r *postgresRepo) Insert(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	items, err := json.Marshal(in.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	q := `
INSERT INTO orders (
	items, subtotal, shipping, tax, total, currency,
	customer_name, customer_email, customer_note,
	gateway_intent_id, gateway_status, receipt_email, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + orderColumns

	row := r.pool.QueryRow(ctx, q,
		items, in.Subtotal, in.Shipping, in.Tax, in.Total, in.Currency,
		in.Customer.Name, in.Customer.Email, in.Customer.Note,
		in.GatewayIntentID, in.GatewayStatus, in.ReceiptEmail, in.Status,
	)
	ord, err := scanOrder(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return ord, nil
}

func (r *postgresRepo) FindByIntentID(ctx context.Context, intentID, orderID string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE gateway_intent_id = $1`
	args := []interface{}{intentID}
	if orderID != "" {
		q += ` AND id::text = $2`
		args = append(args, orderID)
	}

	ord, err := scanOrder(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ord, nil
}

func (r *postgresRepo) ApplyReconciliation(ctx context.Context, orderID string, patch ReconciliationPatch) (*domain.Order, error) {
	// COALESCE keeps the first paid_at forever and NULLIF prevents an empty
	// charge id from clearing a recorded one. Concurrent confirms applying
	// the same gateway status therefore converge to identical rows.
	q := `
UPDATE orders
SET status = $2,
    gateway_status = $3,
    gateway_charge_id = COALESCE(NULLIF($4, ''), gateway_charge_id),
    paid_at = COALESCE(paid_at, $5),
    updated_at = now()
WHERE id::text = $1
RETURNING ` + orderColumns

	row := r.pool.QueryRow(ctx, q, orderID, patch.Status, patch.GatewayStatus, patch.GatewayChargeID, patch.PaidAt)
	ord, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ord, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var ord domain.Order
	var items []byte
	if err := row.Scan(
		&ord.ID,
		&items,
		&ord.Subtotal,
		&ord.Shipping,
		&ord.Tax,
		&ord.Total,
		&ord.Currency,
		&ord.Customer.Name,
		&ord.Customer.Email,
		&ord.Customer.Note,
		&ord.GatewayIntentID,
		&ord.GatewayStatus,
		&ord.GatewayChargeID,
		&ord.ReceiptEmail,
		&ord.PaidAt,
		&ord.Status,
		&ord.CreatedAt,
		&ord.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &ord.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return &ord, nil
}
