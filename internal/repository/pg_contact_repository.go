package repository

import (
	"context"

	"github.com/adagency/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a contact_submissions row and populates s.ID from the
// RETURNING clause. s.CreatedAt is written as given.
func (r *PgContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.Name, s.Email, s.Subject, s.Message, s.CreatedAt,
	).Scan(&s.ID, &s.CreatedAt)
	return translate(err)
}

// List returns every contact submission in storage order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at FROM contact_submissions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete removes the submission with the given id. Deleting a missing id is
// not an error.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}
