package services

import (
	"context"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

// Catalog provides business logic for the status, category and municipality
// taxonomies
type Catalog struct {
	statusRepo       *repos.StatusRepository
	categoryRepo     *repos.CategoryRepository
	municipalityRepo *repos.MunicipalityRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(statusRepo *repos.StatusRepository, categoryRepo *repos.CategoryRepository, municipalityRepo *repos.MunicipalityRepository) *Catalog {
	return &Catalog{
		statusRepo:       statusRepo,
		categoryRepo:     categoryRepo,
		municipalityRepo: municipalityRepo,
	}
}

// CreateStatus adds a status taxonomy entry.
func (s *Catalog) CreateStatus(ctx context.Context, name string) (*models.Status, error) {
	status := &models.Status{Name: name}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// ListStatuses returns all status taxonomy entries.
func (s *Catalog) ListStatuses(ctx context.Context) ([]models.Status, error) {
	return s.statusRepo.List(ctx)
}

// CreateCategory adds a category.
func (s *Catalog) CreateCategory(ctx context.Context, name, image string) (*models.Category, error) {
	category := &models.Category{Name: name, Image: image}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *Catalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateMunicipalities adds a batch of municipalities.
func (s *Catalog) CreateMunicipalities(ctx context.Context, names []string) ([]models.Municipality, error) {
	return s.municipalityRepo.CreateBatch(ctx, names)
}

// ListMunicipalities returns all municipalities.
func (s *Catalog) ListMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	return s.municipalityRepo.List(ctx)
}
