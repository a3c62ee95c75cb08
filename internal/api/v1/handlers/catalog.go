package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// CatalogHandler handles HTTP requests for the status, category and
// municipality taxonomies
type CatalogHandler struct {
	service *services.Catalog
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(s *services.Catalog) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// CreateStatusParams is the body of the status creation request
type CreateStatusParams struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategoryParams is the body of the category creation request
type CreateCategoryParams struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// CreateMunicipalitiesParams is the body of the municipality batch request
type CreateMunicipalitiesParams struct {
	Municipalities []string `json:"municipalities" validate:"required,min=1,dive,required"`
}

// CreateStatus handles adding a status taxonomy entry
func (h *CatalogHandler) CreateStatus(c *fiber.Ctx) error {
	params, err := parseBody[CreateStatusParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	status, err := h.service.CreateStatus(c.Context(), params.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, status)
}

// ListStatuses handles listing the status taxonomy
func (h *CatalogHandler) ListStatuses(c *fiber.Ctx) error {
	statuses, err := h.service.ListStatuses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, statuses)
}

// CreateCategory handles adding a category
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	params, err := parseBody[CreateCategoryParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	category, err := h.service.CreateCategory(c.Context(), params.Name, params.Image)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, category)
}

// ListCategories handles listing the categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, categories)
}

// CreateMunicipalities handles the municipality batch creation
func (h *CatalogHandler) CreateMunicipalities(c *fiber.Ctx) error {
	params, err := parseBody[CreateMunicipalitiesParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	municipalities, err := h.service.CreateMunicipalities(c.Context(), params.Municipalities)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, municipalities)
}

// ListMunicipalities handles listing the municipalities
func (h *CatalogHandler) ListMunicipalities(c *fiber.Ctx) error {
	municipalities, err := h.service.ListMunicipalities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, municipalities)
}
