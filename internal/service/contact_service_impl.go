package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stamps CreatedAt and persists the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	sub.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, sub); err != nil {
		return fmt.Errorf("create contact submission: %w", err)
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
