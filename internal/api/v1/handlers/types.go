package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/auth"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/logger"
)

// Slug identifies the outcome class of a response
type Slug string

const (
	SuccessSlug      Slug = "success"
	ErrorSlug        Slug = "error"
	InvalidInputSlug Slug = "invalid-input"
	NotFoundSlug     Slug = "not-found"
	ConflictSlug     Slug = "conflict"
	ServerErrorSlug  Slug = "server-error"
)

// Response is the envelope every handler returns
type Response struct {
	Slug  Slug        `json:"slug"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

var validate = validator.New()

// parseBody decodes and validates a request body into T.
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	var params T
	if err := c.BodyParser(&params); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// paginationOptions reads the page/page_size query parameters.
func paginationOptions(c *fiber.Ctx) *models.ListOptions {
	opts := &models.ListOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", models.DefaultPageSize),
	}
	opts.Normalize()
	return opts
}

func errInvalidInput(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Slug:  InvalidInputSlug,
		Error: msg,
	})
}

// respondError maps a service error onto the HTTP contract. Scoped-lookup
// misses are 404, handshake and uniqueness conflicts are 409, bad input is
// 400 and everything else is a logged 500 with a generic message.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrTrabajitoNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrStatusNotFound),
		errors.Is(err, models.ErrPortfolioNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrMunicipalityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(Response{
			Slug:  NotFoundSlug,
			Error: err.Error(),
		})

	case errors.Is(err, models.ErrEndNumberMismatch),
		errors.Is(err, models.ErrAlreadyConfirmed),
		errors.Is(err, models.ErrNotAwaitingConfirmation),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicatePortfolio):
		return c.Status(fiber.StatusConflict).JSON(Response{
			Slug:  ConflictSlug,
			Error: err.Error(),
		})

	case errors.Is(err, models.ErrSelfHire),
		errors.Is(err, models.ErrDateFinishBeforeInit),
		errors.Is(err, models.ErrResetCodeInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Slug:  InvalidInputSlug,
			Error: err.Error(),
		})

	case errors.Is(err, models.ErrInvalidCredential),
		errors.Is(err, auth.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(Response{
			Slug:  ErrorSlug,
			Error: "Invalid credentials",
		})

	default:
		logger.ErrorWithFields("unexpected error", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Slug:  ServerErrorSlug,
			Error: "Internal server error",
		})
	}
}

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{Slug: SuccessSlug, Data: data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{Slug: SuccessSlug, Data: data})
}
