package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

type mockContactService struct {
	submitFunc func(ctx context.Context, s *model.ContactSubmission) error
	listFunc   func(ctx context.Context) ([]*model.ContactSubmission, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockContactService) Submit(ctx context.Context, s *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, s)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockNewsletterService struct {
	subscribeFunc func(ctx context.Context, email string) (*model.NewsletterSubscription, service.SubscribeResult, error)
	listFunc      func(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, service.SubscribeResult, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email)
	}
	return &model.NewsletterSubscription{ID: 1, Email: email, Active: true}, service.SubscribeCreated, nil
}

func (m *mockNewsletterService) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockBookingService struct {
	bookFunc func(ctx context.Context, b *model.CallBooking) error
	listFunc func(ctx context.Context) ([]*model.CallBooking, error)
}

func (m *mockBookingService) Book(ctx context.Context, b *model.CallBooking) error {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingService) List(ctx context.Context) ([]*model.CallBooking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func strPtr(s string) *string { return &s }
