package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/middleware"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// AuthHandler handles HTTP requests for registration, login and the
// password reset flow
type AuthHandler struct {
	service *services.Auth
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(s *services.Auth) *AuthHandler {
	return &AuthHandler{service: s}
}

// RegisterParams is the body of the registration request
type RegisterParams struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	MunicipalityID *uint  `json:"municipality,omitempty"`
}

// LoginParams is the body of the login request
type LoginParams struct {
	Identifier string `json:"identifier" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// ForgotPasswordParams is the body of the forgot-password request
type ForgotPasswordParams struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordParams is the body of the password reset request
type ResetPasswordParams struct {
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles account creation
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	params, err := parseBody[RegisterParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	_, err = h.service.Register(c.Context(), &services.RegisterParams{
		Name:           params.Name,
		Phone:          params.Phone,
		Email:          params.Email,
		Password:       params.Password,
		MunicipalityID: params.MunicipalityID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, fiber.Map{"message": "Successfully saved user!"})
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	params, err := parseBody[LoginParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	token, err := h.service.Login(c.Context(), params.Identifier, params.Password)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"token": token})
}

// WhoAmI echoes the authenticated identity
func (h *AuthHandler) WhoAmI(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return respondOK(c, fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// ForgotPassword starts the reset handshake
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	params, err := parseBody[ForgotPasswordParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	if err := h.service.ForgotPassword(c.Context(), params.Email); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"message": "Email successfully sent, please check your inbox."})
}

// VerifyResetCode checks a reset code and returns the account it belongs to
func (h *AuthHandler) VerifyResetCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return errInvalidInput(c, "reset code is required")
	}

	userID, err := h.service.VerifyResetCode(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"id": userID})
}

// ResetPassword replaces the password of the account behind a valid code
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	params, err := parseBody[ResetPasswordParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	if err := h.service.ResetPassword(c.Context(), params.Code, params.Password); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"message": "Information was updated!"})
}
