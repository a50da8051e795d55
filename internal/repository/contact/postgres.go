package contact

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const contactColumns = `
id::text, name, email, COALESCE(phone, ''), COALESCE(address, ''), COALESCE(city, ''),
COALESCE(state, ''), COALESCE(country, ''), COALESCE(zip, ''), COALESCE(message, ''),
subscribe, created_at, updated_at`

func (r *postgresRepo) Insert(ctx context.Context, in CreateContactInput) (*domain.Contact, error) {
	q := `
INSERT INTO contacts (name, email, phone, address, city, state, country, zip, message, subscribe)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + contactColumns

	return scanContact(r.pool.QueryRow(ctx, q,
		in.Name, in.Email, in.Phone, in.Address, in.City, in.State, in.Country, in.Zip, in.Message, in.Subscribe,
	))
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Contact, int, error) {
	where := ""
	var args []interface{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = ` WHERE name ILIKE $1 OR email ILIKE $1`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + contactColumns + ` FROM contacts` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		q += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.State, &c.Country, &c.Zip, &c.Message,
		&c.Subscribe, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
