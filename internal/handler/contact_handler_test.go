package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adagency/backend/internal/model"
)

const validContactBody = `{"name":"Alice","email":"alice@example.com","subject":"Campaign","message":"We need a new launch campaign."}`

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactSubmission
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, s *model.ContactSubmission) error {
			captured = s
			s.ID = 42
			return nil
		},
	}
	h := NewContactHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact", validContactBody))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.Name != "Alice" || captured.Email != "alice@example.com" || captured.Subject != "Campaign" {
		t.Errorf("unexpected submission: %+v", captured)
	}

	var resp createdResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 42 {
		t.Errorf("expected id=42, got %d", resp.ID)
	}
	if resp.Message != "Contact form submitted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestContactHandler_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"name too short", `{"name":"A","email":"a@example.com","subject":"Hello","message":"Long enough message"}`, "name"},
		{"bad email", `{"name":"Alice","email":"not-an-email","subject":"Hello","message":"Long enough message"}`, "email"},
		{"subject too short", `{"name":"Alice","email":"a@example.com","subject":"Hi","message":"Long enough message"}`, "subject"},
		{"message too short", `{"name":"Alice","email":"a@example.com","subject":"Hello","message":"Short"}`, "message"},
		{"message missing", `{"name":"Alice","email":"a@example.com","subject":"Hello"}`, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockContactService{
				submitFunc: func(ctx context.Context, s *model.ContactSubmission) error {
					called = true
					return nil
				},
			}
			h := NewContactHandler(mock, nil)

			rec := httptest.NewRecorder()
			h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact", tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if called {
				t.Error("Submit must not be called for invalid input")
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != "validation_failed" {
				t.Errorf("expected error=validation_failed, got %q", resp.Error)
			}
			found := false
			for _, f := range resp.Errors {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a field error for %q, got %+v", tt.field, resp.Errors)
			}
		})
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact", `{"name":`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_json") {
		t.Errorf("expected invalid_json, got %s", rec.Body.String())
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, s *model.ContactSubmission) error {
			return errors.New("db down")
		},
	}
	h := NewContactHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact", validContactBody))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error detail leaked to client")
	}
}

// ---------------------------------------------------------------------------
// GET /api/messages tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_EmptyArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestContactHandler_List_JSON(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{
				{ID: 2, Name: "Bob", Email: "bob@example.com", Subject: "Hi", Message: "Second", CreatedAt: created},
				{ID: 1, Name: "Alice", Email: "alice@example.com", Subject: "Hello", Message: "First", CreatedAt: created},
			}, nil
		},
	}
	h := NewContactHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	var got []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0]["createdAt"] != "2026-03-01T09:30:00Z" {
		t.Errorf("unexpected createdAt %v", got[0]["createdAt"])
	}
}

func TestContactHandler_List_CSV(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{
				{ID: 1, Name: "Alice", Email: "alice@example.com", Subject: "Hello", Message: "Line one, with comma"},
			}, nil
		},
	}
	h := NewContactHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/messages?format=csv", nil))

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "contact_messages.csv") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "ID,Name,Email,Subject,Message,Created At\n") {
		t.Errorf("unexpected header row: %q", body)
	}
	if !strings.Contains(body, `"Line one, with comma"`) {
		t.Errorf("expected quoted message, got %q", body)
	}
}

func TestContactHandler_List_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewContactHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/messages/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Delete(t *testing.T) {
	var deleted int64
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewContactHandler(mock, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/messages/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 7 {
		t.Errorf("expected id 7, got %d", deleted)
	}
	if !strings.Contains(rec.Body.String(), "Message deleted") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestContactHandler_Delete_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run(id, func(t *testing.T) {
			called := false
			mock := &mockContactService{
				deleteFunc: func(ctx context.Context, id int64) error {
					called = true
					return nil
				},
			}
			h := NewContactHandler(mock, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/messages/x", nil)
			req.SetPathValue("id", id)
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if called {
				t.Error("Delete must not be called")
			}
		})
	}
}

func TestContactHandler_Delete_ServiceError(t *testing.T) {
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return errors.New("db down")
		},
	}
	h := NewContactHandler(mock, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/messages/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
