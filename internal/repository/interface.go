package repository

import (
	"context"

	"github.com/adagency/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository はお問い合わせ永続化のインターフェース
type ContactRepository interface {
	Create(ctx context.Context, s *model.ContactSubmission) error
	List(ctx context.Context) ([]*model.ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}

// NewsletterRepository はニュースレター購読の永続化インターフェース
type NewsletterRepository interface {
	Create(ctx context.Context, s *model.NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	// SetActive updates the active flag in place. It returns ErrNotFound when
	// no row with that id has a different active value.
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

// BookingRepository は相談予約の永続化インターフェース
type BookingRepository interface {
	Create(ctx context.Context, b *model.CallBooking) error
	List(ctx context.Context) ([]*model.CallBooking, error)
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
