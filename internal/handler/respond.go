package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adagency/backend/internal/validation"
	"github.com/goccy/go-json"
)

// maxBodyBytes caps public form bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// createdResponse is returned by the public POST endpoints.
type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write json response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// decodeJSON reads a JSON body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return false
	}
	return true
}

// validate runs the struct rules on v. On failure it writes a 400 with the
// per-field errors (or a 500 if the validator itself failed) and returns false.
func validate(w http.ResponseWriter, r *http.Request, v any, message string) bool {
	err := validation.Struct(v)
	if err == nil {
		return true
	}
	var verr *validation.Error
	if !errors.As(err, &verr) {
		slog.ErrorContext(r.Context(), "validator failure", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "validation_failed",
		Message: message,
		Errors:  verr.Fields,
	})
	return false
}
