// Package routes defines the API routes and URL structure
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/handlers"
	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/middleware"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// APIv1Prefix is the prefix for all API endpoints
const APIv1Prefix = "/api/v1"

// Handlers bundles everything RegisterRoutes needs.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Trabajito *handlers.TrabajitoHandler
	User      *handlers.UserHandler
	Portfolio *handlers.PortfolioHandler
	Catalog   *handlers.CatalogHandler

	// AuthService backs the authentication middleware.
	AuthService *services.Auth
}

// RegisterRoutes configures all the v1 routes.
//
// NOTE: route ordering matters: fixed segments must be registered before
// param segments, otherwise fiber interprets the fixed slug as the param.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	authenticated := middleware.Authentication(h.AuthService)
	asUser := middleware.Authorization(models.UserRoleUser)
	asSysadmin := middleware.Authorization(models.UserRoleSysadmin)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	v1 := app.Group(APIv1Prefix)

	// Auth endpoints
	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/whoami", authenticated, h.Auth.WhoAmI)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Get("/reset-code/:code", h.Auth.VerifyResetCode)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	// Trabajito endpoints
	trabajito := v1.Group("/trabajito", authenticated)
	trabajito.Get("/", asSysadmin, h.Trabajito.List)
	trabajito.Get("/requests", h.Trabajito.ListRequests)
	trabajito.Get("/requests/:identifier", h.Trabajito.GetRequest)
	trabajito.Get("/jobs", h.Trabajito.ListJobs)
	trabajito.Get("/job/:identifier", h.Trabajito.GetJob)
	trabajito.Post("/", asUser, h.Trabajito.Create)
	trabajito.Post("/:identifier/bill", asUser, h.Trabajito.AppendBillLine)
	trabajito.Patch("/start", asUser, h.Trabajito.Start)
	trabajito.Patch("/finish", asUser, h.Trabajito.Finish)
	trabajito.Patch("/finalization", asUser, h.Trabajito.Confirm)
	trabajito.Patch("/deletion/:identifier", asUser, h.Trabajito.ToggleHidden)

	// User endpoints
	users := v1.Group("/users", authenticated, asSysadmin)
	users.Get("/", h.User.List)
	users.Get("/:identifier", h.User.GetByID)

	// Portfolio endpoints
	portfolio := v1.Group("/portfolio", authenticated)
	portfolio.Get("/", h.Portfolio.List)
	portfolio.Get("/mine", h.Portfolio.GetMine)
	portfolio.Get("/reviews/:identifier", h.Portfolio.ListReviews)
	portfolio.Get("/:identifier", h.Portfolio.GetByID)
	portfolio.Post("/", asUser, h.Portfolio.Create)
	portfolio.Post("/reviews", asUser, h.Portfolio.CreateReview)
	portfolio.Patch("/", asUser, h.Portfolio.Update)

	// Taxonomy endpoints
	status := v1.Group("/status")
	status.Get("/", h.Catalog.ListStatuses)
	status.Post("/", authenticated, asSysadmin, h.Catalog.CreateStatus)

	category := v1.Group("/category")
	category.Get("/", h.Catalog.ListCategories)
	category.Post("/", authenticated, asSysadmin, h.Catalog.CreateCategory)

	municipality := v1.Group("/municipality")
	municipality.Get("/", h.Catalog.ListMunicipalities)
	municipality.Post("/", authenticated, asSysadmin, h.Catalog.CreateMunicipalities)
}
