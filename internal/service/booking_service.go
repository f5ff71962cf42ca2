package service

import (
	"context"

	"github.com/adagency/backend/internal/model"
)

// BookingService records consultation-call requests. Slots are never checked
// for conflicts.
type BookingService interface {
	Book(ctx context.Context, b *model.CallBooking) error
	List(ctx context.Context) ([]*model.CallBooking, error)
}
