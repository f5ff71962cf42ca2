package service

import (
	"context"

	"github.com/adagency/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission. s.ID and s.CreatedAt are populated by
	// the implementation.
	Submit(ctx context.Context, s *model.ContactSubmission) error

	// List returns every submission.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// Delete removes a submission; a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}
