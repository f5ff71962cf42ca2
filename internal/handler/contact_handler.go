package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adagency/backend/internal/metrics"
	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/service"
)

// ContactHandler handles the contact form and its admin listing.
type ContactHandler struct {
	svc     service.ContactService
	metrics *metrics.Metrics
}

// NewContactHandler creates a ContactHandler. m may be nil.
func NewContactHandler(svc service.ContactService, m *metrics.Metrics) *ContactHandler {
	return &ContactHandler{svc: svc, metrics: m}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if !decodeJSON(w, r, &in) || !validate(w, r, &in, "Invalid form data") {
		h.metrics.Submission(metrics.FormContact, metrics.OutcomeInvalid)
		return
	}

	sub := in.Submission()
	if err := h.svc.Submit(r.Context(), sub); err != nil {
		slog.ErrorContext(r.Context(), "submit contact form failed", "error", err)
		h.metrics.Submission(metrics.FormContact, metrics.OutcomeError)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to submit contact form")
		return
	}

	slog.InfoContext(r.Context(), "contact form submitted", "id", sub.ID)
	h.metrics.Submission(metrics.FormContact, metrics.OutcomeCreated)
	writeJSON(w, http.StatusCreated, createdResponse{
		Message: "Contact form submitted successfully",
		ID:      sub.ID,
	})
}

// List handles GET /api/messages (admin).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list contact submissions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch messages")
		return
	}
	if wantsCSV(r) {
		writeCSV(w, r, "contact_messages.csv", contactCSVHeader, contactCSVRows(list))
		return
	}
	if list == nil {
		list = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete handles DELETE /api/messages/{id} (admin). Deleting an id that does
// not exist still succeeds.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "Message id must be a positive integer")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "delete contact submission failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete message")
		return
	}
	slog.InfoContext(r.Context(), "contact submission deleted", "id", id)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Message deleted"})
}
