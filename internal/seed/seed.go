package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatkhazana-hub/backend/internal/catalog"
	"github.com/khatkhazana-hub/backend/internal/service/product"
)

// Apply inserts the catalog snapshot as product rows and creates one
// category per distinct catalog category. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool, cat *catalog.Snapshot) error {
	seen := map[string]bool{}
	pos := 0
	for _, entry := range cat.Entries() {
		if entry.Category == "" || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		if err := ensureCategory(ctx, pool, entry.Category, pos); err != nil {
			return fmt.Errorf("ensure category %s: %w", entry.Category, err)
		}
		pos++
	}

	for _, entry := range cat.Entries() {
		if err := upsertProduct(ctx, pool, entry); err != nil {
			return fmt.Errorf("upsert product %s: %w", entry.ID, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string, pos int) error {
	const q = `
INSERT INTO categories (name, slug, sort_order)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING
`
	_, err := pool.Exec(ctx, q, name, product.Slugify(name), pos)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, entry catalog.Entry) error {
	const q = `
INSERT INTO products (title, slug, price, category)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE SET
	title = EXCLUDED.title,
	price = EXCLUDED.price,
	category = EXCLUDED.category,
	updated_at = now()
`
	_, err := pool.Exec(ctx, q, entry.Title, entry.ID, entry.UnitPrice, entry.Category)
	return err
}
