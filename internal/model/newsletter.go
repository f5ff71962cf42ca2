package model

import (
	"strings"
	"time"
)

// NewsletterSubscription is one row per email address. Active flips back to
// true when a lapsed subscriber signs up again.
type NewsletterSubscription struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}

// NewsletterInput is the POST /api/newsletter body.
type NewsletterInput struct {
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims and lower-cases the email so lookups are case-insensitive.
func (in *NewsletterInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}
