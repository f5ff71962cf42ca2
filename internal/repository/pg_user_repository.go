package repository

import (
	"context"

	"github.com/adagency/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

// Create inserts a user; a taken username yields ErrDuplicate.
func (r *PgUserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		u.Username, u.Password,
	).Scan(&u.ID)
	return translate(err)
}

// FindByUsername はユーザー名でユーザーを取得する
func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
