package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/repository"
)

type bookingServiceImpl struct {
	repo repository.BookingRepository
}

// NewBookingService creates a BookingService backed by the given repository.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingServiceImpl{repo: repo}
}

// Book stamps CreatedAt and persists the booking. Unknown consultation types
// are stored as sent.
func (s *bookingServiceImpl) Book(ctx context.Context, b *model.CallBooking) error {
	if !model.IsKnownConsultationType(b.ConsultationType) {
		slog.DebugContext(ctx, "booking with unrecognised consultation type", "consultation_type", b.ConsultationType)
	}
	b.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, b); err != nil {
		return fmt.Errorf("create call booking: %w", err)
	}
	return nil
}

func (s *bookingServiceImpl) List(ctx context.Context) ([]*model.CallBooking, error) {
	return s.repo.List(ctx)
}
