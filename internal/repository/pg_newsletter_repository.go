package repository

import (
	"context"

	"github.com/adagency/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgNewsletterRepository は NewsletterRepository の PostgreSQL 実装
type PgNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsletterRepository は PgNewsletterRepository を生成する
func NewPgNewsletterRepository(pool *pgxpool.Pool) *PgNewsletterRepository {
	return &PgNewsletterRepository{pool: pool}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

const newsletterSelectCols = `id, email, created_at, active`

// Create inserts a subscription. A second row for the same email yields ErrDuplicate.
func (r *PgNewsletterRepository) Create(ctx context.Context, s *model.NewsletterSubscription) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscriptions (email, created_at, active)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		s.Email, s.CreatedAt, s.Active,
	).Scan(&s.ID, &s.CreatedAt)
	return translate(err)
}

// FindByEmail returns ErrNotFound when the address has never subscribed.
func (r *PgNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var s model.NewsletterSubscription
	err := r.pool.QueryRow(ctx,
		`SELECT `+newsletterSelectCols+` FROM newsletter_subscriptions WHERE email = $1`, email,
	).Scan(&s.ID, &s.Email, &s.CreatedAt, &s.Active)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// SetActive flips the active flag only when it differs, so concurrent
// reactivations touch the row once; the loser sees ErrNotFound.
func (r *PgNewsletterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscriptions SET active = $2 WHERE id = $1 AND active <> $2`,
		id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every subscription, active or not.
func (r *PgNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+newsletterSelectCols+` FROM newsletter_subscriptions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.NewsletterSubscription
	for rows.Next() {
		var s model.NewsletterSubscription
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt, &s.Active); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
