package services

import (
	"context"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

// User provides business logic for account administration
type User struct {
	userRepo *repos.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repos.UserRepository) *User {
	return &User{userRepo: userRepo}
}

// List returns a page of users.
func (s *User) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.User], error) {
	return s.userRepo.List(ctx, opts)
}

// GetByID retrieves a user by their ID.
func (s *User) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
