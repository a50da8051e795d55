package category

import (
	"context"
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

const categoryColumns = `id::text, name, slug, active, sort_order, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories WHERE active = TRUE ORDER BY sort_order ASC, name ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Active, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	q := `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
RETURNING ` + categoryColumns

	var c domain.Category
	err := r.pool.QueryRow(ctx, q, in.Name, in.Slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Active, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error) {
	set := ""
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Slug != nil {
		add("slug", *in.Slug)
	}
	if in.Active != nil {
		add("active", *in.Active)
	}
	if in.SortOrder != nil {
		add("sort_order", *in.SortOrder)
	}
	if len(args) == 0 {
		return nil, errors.New("no fields to update")
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE categories SET %s, updated_at = now() WHERE id::text = $%d RETURNING `+categoryColumns, set, len(args))

	var c domain.Category
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Active, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Reorder(ctx context.Context, ids []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for pos, id := range ids {
		cmd, err := tx.Exec(ctx, `UPDATE categories SET sort_order = $1, updated_at = now() WHERE id::text = $2`, pos, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
