package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/repository"
	"github.com/adagency/backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceImpl は UserService の実装
type UserServiceImpl struct {
	repo repository.UserRepository
	cost int
}

// NewUserService は bcrypt.DefaultCost でハッシュ化する UserServiceImpl を生成する
func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, cost: bcrypt.DefaultCost}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register returns a *validation.Error for bad input and ErrUsernameTaken
// when the unique index rejects the username.
func (s *UserServiceImpl) Register(ctx context.Context, in model.UserInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{Username: in.Username, Password: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserServiceImpl) Verify(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
