package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

// StatusRepository handles database operations for the status taxonomy
type StatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Create persists a new status taxonomy entry
func (r *StatusRepository) Create(ctx context.Context, status *models.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// GetByID retrieves a status by its ID
func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).First(&status, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return &status, nil
}

// GetByName retrieves a status by its name
func (r *StatusRepository) GetByName(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return &status, nil
}

// List returns all status taxonomy entries
func (r *StatusRepository) List(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error
	return statuses, err
}

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// List returns all categories
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

// MunicipalityRepository handles database operations for municipalities
type MunicipalityRepository struct {
	db *gorm.DB
}

// NewMunicipalityRepository creates a new municipality repository instance
func NewMunicipalityRepository(db *gorm.DB) *MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

// CreateBatch persists several municipalities in one transaction.
func (r *MunicipalityRepository) CreateBatch(ctx context.Context, names []string) ([]models.Municipality, error) {
	municipalities := make([]models.Municipality, 0, len(names))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			m := models.Municipality{Name: name}
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("failed to create municipality %q: %w", name, err)
			}
			municipalities = append(municipalities, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return municipalities, nil
}

// GetByID retrieves a municipality by its ID
func (r *MunicipalityRepository) GetByID(ctx context.Context, id uint) (*models.Municipality, error) {
	var municipality models.Municipality
	err := r.db.WithContext(ctx).First(&municipality, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMunicipalityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get municipality: %w", err)
	}
	return &municipality, nil
}

// List returns all municipalities
func (r *MunicipalityRepository) List(ctx context.Context) ([]models.Municipality, error) {
	var municipalities []models.Municipality
	err := r.db.WithContext(ctx).Order("name").Find(&municipalities).Error
	return municipalities, err
}
