package service

import (
	"context"
	"errors"

	"github.com/adagency/backend/internal/model"
)

var (
	// ErrUsernameTaken is returned by Register when the username exists.
	ErrUsernameTaken = errors.New("username taken")
	// ErrInvalidCredentials is returned by Verify for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService manages operator accounts in the users table.
type UserService interface {
	// Register validates the input, hashes the password and stores the user.
	Register(ctx context.Context, in model.UserInput) (*model.User, error)
	// Verify returns the user when password matches the stored hash.
	Verify(ctx context.Context, username, password string) (*model.User, error)
}
