package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adagency/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository is a func-field stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc func(ctx context.Context, s *model.ContactSubmission) error
	listFunc   func(ctx context.Context) ([]*model.ContactSubmission, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_SetsCreatedAt(t *testing.T) {
	before := time.Now()
	var saved *model.ContactSubmission
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, s *model.ContactSubmission) error {
			saved = s
			s.ID = 7
			return nil
		},
	}
	svc := NewContactService(mock)

	sub := &model.ContactSubmission{Name: "Ann", Email: "ann@example.com", Subject: "Ads", Message: "Need a billboard"}
	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now()

	if saved == nil {
		t.Fatal("expected Create to be called")
	}
	if saved.CreatedAt.Before(before) || saved.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not in expected range [%v, %v]", saved.CreatedAt, before, after)
	}
	if sub.ID != 7 {
		t.Errorf("expected id populated by repository, got %d", sub.ID)
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	dbErr := errors.New("db write failed")
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, s *model.ContactSubmission) error {
			return dbErr
		},
	}
	svc := NewContactService(mock)

	err := svc.Submit(context.Background(), &model.ContactSubmission{})
	if !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Delete tests
// ---------------------------------------------------------------------------

func TestContactService_List_ReturnsSubmissions(t *testing.T) {
	want := []*model.ContactSubmission{{ID: 1, Name: "Ann"}}
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return want, nil
		},
	}
	svc := NewContactService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestContactService_Delete_ForwardsID(t *testing.T) {
	var gotID int64
	mock := &mockContactRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	svc := NewContactService(mock)

	if err := svc.Delete(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 42 {
		t.Errorf("expected id=42 forwarded, got %d", gotID)
	}
}
