package services

import (
	"context"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

// CreatePortfolioParams carries a new portfolio request.
type CreatePortfolioParams struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	CategoryID  uint     `json:"category"`
}

// Portfolio provides business logic for portfolios and reviews
type Portfolio struct {
	portfolioRepo *repos.PortfolioRepository
	categoryRepo  *repos.CategoryRepository
}

// NewPortfolioService creates a new portfolio service instance
func NewPortfolioService(portfolioRepo *repos.PortfolioRepository, categoryRepo *repos.CategoryRepository) *Portfolio {
	return &Portfolio{portfolioRepo: portfolioRepo, categoryRepo: categoryRepo}
}

// Create creates the user's portfolio. The category must resolve and the
// user must not already have one.
func (s *Portfolio) Create(ctx context.Context, userID uint, params *CreatePortfolioParams) (*models.Portfolio, error) {
	if _, err := s.categoryRepo.GetByID(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	p := &models.Portfolio{
		Title:       params.Title,
		Description: params.Description,
		Images:      params.Images,
		UserID:      userID,
		CategoryID:  params.CategoryID,
	}
	if err := s.portfolioRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetMine returns the caller's portfolio.
func (s *Portfolio) GetMine(ctx context.Context, userID uint) (*models.Portfolio, error) {
	return s.portfolioRepo.GetByUser(ctx, userID)
}

// GetByID returns any portfolio by id.
func (s *Portfolio) GetByID(ctx context.Context, id uint) (*models.Portfolio, error) {
	return s.portfolioRepo.GetByID(ctx, id)
}

// Update applies a partial update to the caller's portfolio.
func (s *Portfolio) Update(ctx context.Context, userID uint, patch *models.PortfolioPatch) (*models.Portfolio, error) {
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.portfolioRepo.Update(ctx, userID, patch)
}

// List returns a page of portfolios.
func (s *Portfolio) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Portfolio], error) {
	return s.portfolioRepo.List(ctx, opts)
}

// AddReview appends a review authored by the caller.
func (s *Portfolio) AddReview(ctx context.Context, authorID, portfolioID uint, description string, qualification int) (*models.Review, error) {
	review := &models.Review{
		PortfolioID:   portfolioID,
		AuthorID:      authorID,
		Description:   description,
		Qualification: qualification,
	}
	if err := s.portfolioRepo.AddReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns the reviews of a portfolio.
func (s *Portfolio) ListReviews(ctx context.Context, portfolioID uint) ([]models.Review, error) {
	return s.portfolioRepo.ListReviews(ctx, portfolioID)
}
