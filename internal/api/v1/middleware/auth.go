// Package middleware provides the authentication, authorization and request
// logging middleware for the v1 API.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// userLocalKey is where the authenticated user is stashed on the context.
const userLocalKey = "currentUser"

const tokenPrefix = "Bearer"

// Authentication resolves the bearer token into a user and stores it on the
// request context. Any failure is a generic 401: the caller learns nothing
// about which check failed.
func Authentication(authSvc *services.Auth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != tokenPrefix || parts[1] == "" {
			return unauthorized(c)
		}

		user, err := authSvc.Authenticate(c.Context(), parts[1])
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// Authorization requires the authenticated user to hold the given role.
// Sysadmin satisfies any requirement. 403 is distinct from the 401 of a
// missing or invalid credential.
func Authorization(required models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if !user.HasRole(required) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permissions",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Authentication, or
// nil when the route is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "No authorization",
	})
}
