package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

// PortfolioRepository handles database operations for portfolios and their
// embedded reviews
type PortfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository instance
func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create persists a new portfolio. A user may hold at most one.
func (r *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	_, err := r.GetByUser(ctx, p.UserID)
	if err == nil {
		return models.ErrDuplicatePortfolio
	}
	if !errors.Is(err, models.ErrPortfolioNotFound) {
		return fmt.Errorf("error checking portfolio existence: %w", err)
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID retrieves a portfolio with its reviews
func (r *PortfolioRepository) GetByID(ctx context.Context, id uint) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).Preload("Reviews").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &p, nil
}

// GetByUser retrieves the portfolio owned by the given user
func (r *PortfolioRepository) GetByUser(ctx context.Context, userID uint) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).Preload("Reviews").
		Where(&models.Portfolio{UserID: userID}).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &p, nil
}

// Update applies a partial update, scoped to the owning user. Only fields
// present in the patch are written; a present zero value is a real update.
func (r *PortfolioRepository) Update(ctx context.Context, userID uint, patch *models.PortfolioPatch) (*models.Portfolio, error) {
	p, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}

	// Save goes through the field serializers, which a column-map update
	// would skip for the images payload.
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	return p, nil
}

// List returns a page of portfolios.
func (r *PortfolioRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Portfolio], error) {
	opts.Normalize()
	db := r.db.WithContext(ctx).Model(&models.Portfolio{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count portfolios: %w", err)
	}

	var items []models.Portfolio
	err := db.Preload("Reviews").
		Limit(opts.PageSize).Offset(opts.Offset()).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return models.NewPage(items, opts, total), nil
}

// AddReview appends a review to a portfolio.
func (r *PortfolioRepository) AddReview(ctx context.Context, review *models.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, review.PortfolioID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(review).Error
}

// ListReviews returns the reviews of a portfolio in insertion order.
func (r *PortfolioRepository) ListReviews(ctx context.Context, portfolioID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where(&models.Review{PortfolioID: portfolioID}).
		Order("id").
		Find(&reviews).Error
	return reviews, err
}
