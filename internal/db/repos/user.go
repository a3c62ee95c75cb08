package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. Returns ErrDuplicateEmail if the email is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return fmt.Errorf("error checking email existence: %w", err)
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// Save persists the mutable state of an existing user (tokens, password,
// reset fields).
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByResetToken retrieves a user holding the given hashed reset token with
// an expiry later than now (unix seconds).
func (r *UserRepository) GetByResetToken(ctx context.Context, hashedToken string, now int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("pass_reset_token = ? AND pass_reset_expires > ?", hashedToken, now).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrResetCodeInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return &user, nil
}

// List returns a page of users.
func (r *UserRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.User], error) {
	opts.Normalize()
	db := r.db.WithContext(ctx).Model(&models.User{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	err := db.Limit(opts.PageSize).Offset(opts.Offset()).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return models.NewPage(users, opts, total), nil
}
