package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// UserHandler handles HTTP requests for account administration
type UserHandler struct {
	service *services.User
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(s *services.User) *UserHandler {
	return &UserHandler{service: s}
}

// List handles the sysadmin listing of all users
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.Context(), paginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, page)
}

// GetByID handles fetching one user by id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid user id")
	}

	user, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}
