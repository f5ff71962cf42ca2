package handler

import (
	"log/slog"
	"net/http"

	"github.com/adagency/backend/internal/metrics"
	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/service"
)

// BookingHandler handles consultation-call bookings.
type BookingHandler struct {
	svc     service.BookingService
	metrics *metrics.Metrics
}

// NewBookingHandler creates a BookingHandler. m may be nil.
func NewBookingHandler(svc service.BookingService, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{svc: svc, metrics: m}
}

// Book handles POST /api/book-call.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var in model.CallBookingInput
	if !decodeJSON(w, r, &in) || !validate(w, r, &in, "Invalid form data") {
		h.metrics.Submission(metrics.FormBooking, metrics.OutcomeInvalid)
		return
	}

	b := in.Booking()
	if err := h.svc.Book(r.Context(), b); err != nil {
		slog.ErrorContext(r.Context(), "book call failed", "error", err)
		h.metrics.Submission(metrics.FormBooking, metrics.OutcomeError)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to book consultation call")
		return
	}

	slog.InfoContext(r.Context(), "call booked", "id", b.ID, "date", b.Date, "time", b.Time)
	h.metrics.Submission(metrics.FormBooking, metrics.OutcomeCreated)
	writeJSON(w, http.StatusCreated, createdResponse{
		Message: "Consultation call booked successfully",
		ID:      b.ID,
	})
}

// List handles GET /api/bookings (admin).
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list call bookings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch bookings")
		return
	}
	if wantsCSV(r) {
		writeCSV(w, r, "call_bookings.csv", bookingCSVHeader, bookingCSVRows(list))
		return
	}
	if list == nil {
		list = []*model.CallBooking{}
	}
	writeJSON(w, http.StatusOK, list)
}
