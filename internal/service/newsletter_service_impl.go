package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/repository"
)

// NewsletterServiceImpl は NewsletterService の実装
type NewsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService は NewsletterServiceImpl を生成する
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &NewsletterServiceImpl{repo: repo}
}

// Subscribe reads then writes without a transaction. Two races are possible
// and both converge on a single active row:
//   - concurrent first subscribes: the insert that loses hits the unique
//     index, and the row the winner created is resolved instead;
//   - concurrent reactivations: only one UPDATE matches active = false.
func (s *NewsletterServiceImpl) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, SubscribeResult, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return s.resolve(ctx, existing)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, 0, fmt.Errorf("find subscription: %w", err)
	}

	sub := &model.NewsletterSubscription{
		Email:     email,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}
	err = s.repo.Create(ctx, sub)
	if err == nil {
		return sub, SubscribeCreated, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, 0, fmt.Errorf("create subscription: %w", err)
	}

	existing, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, 0, fmt.Errorf("find subscription after conflict: %w", err)
	}
	return s.resolve(ctx, existing)
}

func (s *NewsletterServiceImpl) resolve(ctx context.Context, existing *model.NewsletterSubscription) (*model.NewsletterSubscription, SubscribeResult, error) {
	if existing.Active {
		return existing, 0, ErrAlreadySubscribed
	}
	// ErrNotFound here means another request reactivated the row first.
	if err := s.repo.SetActive(ctx, existing.ID, true); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, 0, fmt.Errorf("reactivate subscription: %w", err)
	}
	existing.Active = true
	return existing, SubscribeReactivated, nil
}

// List はすべての購読を返す
func (s *NewsletterServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	return s.repo.List(ctx)
}
