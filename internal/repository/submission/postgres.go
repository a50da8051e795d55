package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

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

const submissionColumns = `
id::text, full_name, email, phone, location,
has_read_guidelines, agreed_terms, upload_type,
letter, photo, before_2000, notes,
status, letter_status, photo_status,
featured_letter, featured_photo, created_at, updated_at`

func (r *postgresRepo) Insert(ctx context.Context, in CreateSubmissionInput) (*domain.Submission, error) {
	letter, err := json.Marshal(in.Letter)
	if err != nil {
		return nil, fmt.Errorf("marshal letter section: %w", err)
	}
	photo, err := json.Marshal(in.Photo)
	if err != nil {
		return nil, fmt.Errorf("marshal photo section: %w", err)
	}

	q := `
INSERT INTO submissions (
	full_name, email, phone, location,
	has_read_guidelines, agreed_terms, upload_type,
	letter, photo, before_2000
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + submissionColumns

	row := r.pool.QueryRow(ctx, q,
		in.FullName, in.Email, in.Phone, in.Location,
		in.HasReadGuidelines, in.AgreedTermsSubmission, in.UploadType,
		letter, photo, in.Before2000,
	)
	return scanSubmission(row)
}

func (r *postgresRepo) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	q := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	q := `SELECT ` + submissionColumns + ` FROM submissions WHERE id::text = $1`
	s, err := scanSubmission(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) (*domain.Submission, error) {
	q := `UPDATE submissions SET status = $2, updated_at = now() WHERE id::text = $1 RETURNING ` + submissionColumns
	s, err := scanSubmission(r.pool.QueryRow(ctx, q, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateSubmissionInput) (*domain.Submission, error) {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Phone != nil {
		add("phone", *in.Phone)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.Letter != nil {
		letter, err := json.Marshal(in.Letter)
		if err != nil {
			return nil, fmt.Errorf("marshal letter section: %w", err)
		}
		add("letter", letter)
	}
	if in.Photo != nil {
		photo, err := json.Marshal(in.Photo)
		if err != nil {
			return nil, fmt.Errorf("marshal photo section: %w", err)
		}
		add("photo", photo)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if in.LetterStatus != nil {
		add("letter_status", *in.LetterStatus)
	}
	if in.PhotoStatus != nil {
		add("photo_status", *in.PhotoStatus)
	}
	if in.FeaturedLetter != nil {
		add("featured_letter", *in.FeaturedLetter)
	}
	if in.FeaturedPhoto != nil {
		add("featured_photo", *in.FeaturedPhoto)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE submissions SET %s, updated_at = now() WHERE id::text = $%d RETURNING `+submissionColumns,
		strings.Join(sets, ", "), len(args),
	)
	s, err := scanSubmission(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	var letter, photo []byte
	if err := row.Scan(
		&s.ID,
		&s.FullName,
		&s.Email,
		&s.Phone,
		&s.Location,
		&s.HasReadGuidelines,
		&s.AgreedTermsSubmission,
		&s.UploadType,
		&letter,
		&photo,
		&s.Before2000,
		&s.Notes,
		&s.Status,
		&s.LetterStatus,
		&s.PhotoStatus,
		&s.FeaturedLetter,
		&s.FeaturedPhoto,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(letter) > 0 {
		if err := json.Unmarshal(letter, &s.Letter); err != nil {
			return nil, fmt.Errorf("unmarshal letter section: %w", err)
		}
	}
	if len(photo) > 0 {
		if err := json.Unmarshal(photo, &s.Photo); err != nil {
			return nil, fmt.Errorf("unmarshal photo section: %w", err)
		}
	}
	return &s, nil
}
