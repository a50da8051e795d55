package product

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

const productColumns = `
id::text, title, slug, description, price, category, COALESCE(tag, ''),
rating, reviews, in_stock, image, featured, active, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products`
	var args []interface{}
	clause := " WHERE"
	if filter.ActiveOnly {
		q += clause + " active = TRUE"
		clause = " AND"
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		q += fmt.Sprintf("%s category = $%d", clause, len(args))
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByIDOrSlug(ctx context.Context, key string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id::text = $1 OR slug = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	q := `
INSERT INTO products (title, slug, description, price, category, tag, rating, reviews, in_stock, image, featured, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, q,
		in.Title, in.Slug, in.Description, in.Price, in.Category, in.Tag,
		in.Rating, in.Reviews, in.InStock, in.Image, in.Featured, in.Active,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	set := ""
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Slug != nil {
		add("slug", *in.Slug)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Price != nil {
		add("price", *in.Price)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.Tag != nil {
		add("tag", *in.Tag)
	}
	if in.Rating != nil {
		add("rating", *in.Rating)
	}
	if in.Reviews != nil {
		add("reviews", *in.Reviews)
	}
	if in.InStock != nil {
		add("in_stock", *in.InStock)
	}
	if in.Image != nil {
		add("image", *in.Image)
	}
	if in.Featured != nil {
		add("featured", *in.Featured)
	}
	if in.Active != nil {
		add("active", *in.Active)
	}
	if len(args) == 0 {
		return r.GetByIDOrSlug(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE products SET %s, updated_at = now() WHERE id::text = $%d RETURNING `+productColumns, set, len(args))

	p, err := scanProduct(r.pool.QueryRow(ctx, q, args...))
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
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Tag,
		&p.Rating,
		&p.Reviews,
		&p.InStock,
		&p.Image,
		&p.Featured,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
