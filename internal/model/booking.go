package model

import (
	"strings"
	"time"
)

// Consultation types offered by the booking dialog. The backend stores any
// non-empty value; these are what the frontend sends.
const (
	ConsultationAdvertising = "advertising"
	ConsultationBranding    = "branding"
	ConsultationMedia       = "media"
	ConsultationGrowth      = "growth"
)

// IsKnownConsultationType reports whether t is one of the dialog's options.
func IsKnownConsultationType(t string) bool {
	switch t {
	case ConsultationAdvertising, ConsultationBranding, ConsultationMedia, ConsultationGrowth:
		return true
	}
	return false
}

// CallBooking is a requested consultation slot. Slots are not exclusive:
// several bookings may share the same Date and Time.
type CallBooking struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Company          *string   `json:"company"`
	Phone            *string   `json:"phone"`
	Notes            *string   `json:"notes"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ConsultationType string    `json:"consultationType"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CallBookingInput is the POST /api/book-call body.
type CallBookingInput struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	Notes            string `json:"notes"`
	Date             string `json:"date" validate:"required,datelike"`
	Time             string `json:"time" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"required"`
}

// Booking builds the record to persist. Blank optional fields become nil.
func (in CallBookingInput) Booking() *CallBooking {
	return &CallBooking{
		Name:             in.Name,
		Email:            in.Email,
		Company:          optional(in.Company),
		Phone:            optional(in.Phone),
		Notes:            optional(in.Notes),
		Date:             in.Date,
		Time:             in.Time,
		ConsultationType: in.ConsultationType,
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
