package service

import (
	"context"
	"errors"

	"github.com/adagency/backend/internal/model"
)

// ErrAlreadySubscribed is returned when the email has an active subscription.
var ErrAlreadySubscribed = errors.New("already subscribed")

// SubscribeResult tells the caller which transition Subscribe performed.
type SubscribeResult int

const (
	// SubscribeCreated: no row existed; a new active row was inserted.
	SubscribeCreated SubscribeResult = iota + 1
	// SubscribeReactivated: an inactive row was flipped back to active in place.
	SubscribeReactivated
)

func (r SubscribeResult) String() string {
	switch r {
	case SubscribeCreated:
		return "created"
	case SubscribeReactivated:
		return "reactivated"
	default:
		return "unknown"
	}
}

// NewsletterService manages newsletter subscriptions.
type NewsletterService interface {
	// Subscribe applies absent -> active (created) or inactive -> active
	// (reactivated). An active subscription yields ErrAlreadySubscribed along
	// with the existing row.
	Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, SubscribeResult, error)

	// List returns every subscription, active or not.
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}
