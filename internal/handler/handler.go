package handler

import (
	"github.com/adagency/backend/internal/repository"
)

// Handler serves endpoints that only need the database handle.
type Handler struct {
	db repository.DB
}

func New(db repository.DB) *Handler {
	return &Handler{db: db}
}
