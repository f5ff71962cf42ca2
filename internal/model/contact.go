package model

import "time"

// ContactSubmission is a message sent through the site's contact form.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is the POST /api/contact body.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submission builds the record to persist from a validated input.
func (in ContactInput) Submission() *ContactSubmission {
	return &ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}
