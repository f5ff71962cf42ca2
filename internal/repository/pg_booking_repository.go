package repository

import (
	"context"

	"github.com/adagency/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBookingRepository is the PostgreSQL implementation of BookingRepository.
type PgBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPgBookingRepository creates a PgBookingRepository backed by the given pool.
func NewPgBookingRepository(pool *pgxpool.Pool) *PgBookingRepository {
	return &PgBookingRepository{pool: pool}
}

var _ BookingRepository = (*PgBookingRepository)(nil)

// Create inserts a call_bookings row. There is no uniqueness on (date, time).
func (r *PgBookingRepository) Create(ctx context.Context, b *model.CallBooking) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO call_bookings
		   (name, email, company, phone, notes, date, time, consultation_type, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
		 RETURNING id, created_at`,
		b.Name, b.Email, b.Company, b.Phone, b.Notes, b.Date, b.Time, b.ConsultationType, b.CreatedAt,
	).Scan(&b.ID, &b.CreatedAt)
	return translate(err)
}

// List returns every booking in storage order.
func (r *PgBookingRepository) List(ctx context.Context) ([]*model.CallBooking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, company, phone, notes, date, time, consultation_type, created_at
		 FROM call_bookings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.CallBooking
	for rows.Next() {
		var b model.CallBooking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Company, &b.Phone, &b.Notes,
			&b.Date, &b.Time, &b.ConsultationType, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
