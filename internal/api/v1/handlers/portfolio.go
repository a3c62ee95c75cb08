package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/middleware"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// PortfolioHandler handles HTTP requests for portfolios and reviews
type PortfolioHandler struct {
	service *services.Portfolio
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(s *services.Portfolio) *PortfolioHandler {
	return &PortfolioHandler{service: s}
}

// CreatePortfolioParams is the body of the portfolio creation request.
// Images are URLs; the upload itself happens elsewhere.
type CreatePortfolioParams struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images"`
	CategoryID  uint     `json:"category" validate:"required"`
}

// UpdatePortfolioParams is the body of the partial update request
type UpdatePortfolioParams struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	CategoryID  *uint     `json:"category,omitempty"`
}

// CreateReviewParams is the body of the review creation request
type CreateReviewParams struct {
	PortfolioID   uint   `json:"portfolio" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Qualification int    `json:"qualification" validate:"required,min=1,max=5"`
}

// Create handles portfolio creation
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	params, err := parseBody[CreatePortfolioParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	p, err := h.service.Create(c.Context(), actor.ID, &services.CreatePortfolioParams{
		Title:       params.Title,
		Description: params.Description,
		Images:      params.Images,
		CategoryID:  params.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, p)
}

// GetMine handles fetching the caller's portfolio
func (h *PortfolioHandler) GetMine(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	p, err := h.service.GetMine(c.Context(), actor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, p)
}

// GetByID handles fetching any portfolio by id
func (h *PortfolioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid portfolio id")
	}

	p, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, p)
}

// Update handles a partial update of the caller's portfolio
func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	params, err := parseBody[UpdatePortfolioParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	p, err := h.service.Update(c.Context(), actor.ID, &models.PortfolioPatch{
		Title:       params.Title,
		Description: params.Description,
		Images:      params.Images,
		CategoryID:  params.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, p)
}

// List handles the public paginated portfolio listing
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.Context(), paginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, page)
}

// CreateReview handles appending a review to a portfolio
func (h *PortfolioHandler) CreateReview(c *fiber.Ctx) error {
	params, err := parseBody[CreateReviewParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	review, err := h.service.AddReview(c.Context(), actor.ID, params.PortfolioID, params.Description, params.Qualification)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, review)
}

// ListReviews handles listing the reviews of a portfolio
func (h *PortfolioHandler) ListReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid portfolio id")
	}

	reviews, err := h.service.ListReviews(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, reviews)
}
