package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adagency/backend/internal/metrics"
	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/service"
)

// NewsletterHandler handles newsletter sign-ups and the subscriber listing.
type NewsletterHandler struct {
	svc     service.NewsletterService
	metrics *metrics.Metrics
}

// NewNewsletterHandler creates a NewsletterHandler. m may be nil.
func NewNewsletterHandler(svc service.NewsletterService, m *metrics.Metrics) *NewsletterHandler {
	return &NewsletterHandler{svc: svc, metrics: m}
}

// Subscribe handles POST /api/newsletter.
// 201 for a new address, 200 when a lapsed subscription is reactivated and
// 409 when the address is already active.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in model.NewsletterInput
	if !decodeJSON(w, r, &in) {
		h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeInvalid)
		return
	}
	in.Normalize()
	if !validate(w, r, &in, "Invalid subscription data") {
		h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeInvalid)
		return
	}

	sub, result, err := h.svc.Subscribe(r.Context(), in.Email)
	switch {
	case errors.Is(err, service.ErrAlreadySubscribed):
		h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeConflict)
		writeError(w, http.StatusConflict, "already_subscribed", "Email is already subscribed to the newsletter")
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "newsletter subscribe failed", "error", err)
		h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeError)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to subscribe to newsletter")
		return
	}

	slog.InfoContext(r.Context(), "newsletter subscription", "id", sub.ID, "result", result.String())
	if result == service.SubscribeReactivated {
		h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeReactivated)
		writeJSON(w, http.StatusOK, createdResponse{
			Message: "Newsletter subscription reactivated successfully",
			ID:      sub.ID,
		})
		return
	}
	h.metrics.Submission(metrics.FormNewsletter, metrics.OutcomeCreated)
	writeJSON(w, http.StatusCreated, createdResponse{
		Message: "Newsletter subscription created successfully",
		ID:      sub.ID,
	})
}

// List handles GET /api/newsletter-subscribers (admin).
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list newsletter subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch subscribers")
		return
	}
	if wantsCSV(r) {
		writeCSV(w, r, "newsletter_subscribers.csv", newsletterCSVHeader, newsletterCSVRows(list))
		return
	}
	if list == nil {
		list = []*model.NewsletterSubscription{}
	}
	writeJSON(w, http.StatusOK, list)
}
