// Package app wires the service graph and builds the fiber application.
package app

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/handlers"
	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/middleware"
	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/routes"
	"github.com/trabajitos-sv/trabajitos-api/internal/auth"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
	"github.com/trabajitos-sv/trabajitos-api/internal/mailer"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// New builds the fiber app with every dependency injected explicitly. No
// package-level state: tests construct the same graph over their own DB.
func New(db *gorm.DB, jwtSecret string, mail mailer.Mailer) *fiber.App {
	// Repositories
	trabajitoRepo := repos.NewTrabajitoRepository(db)
	userRepo := repos.NewUserRepository(db)
	statusRepo := repos.NewStatusRepository(db)
	categoryRepo := repos.NewCategoryRepository(db)
	municipalityRepo := repos.NewMunicipalityRepository(db)
	portfolioRepo := repos.NewPortfolioRepository(db)

	// Services
	tokens := auth.NewTokenManager(jwtSecret)
	authSvc := services.NewAuthService(userRepo, municipalityRepo, tokens, mail)
	trabajitoSvc := services.NewTrabajitoService(trabajitoRepo, userRepo, statusRepo)
	userSvc := services.NewUserService(userRepo)
	portfolioSvc := services.NewPortfolioService(portfolioRepo, categoryRepo)
	catalogSvc := services.NewCatalogService(statusRepo, categoryRepo, municipalityRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(middleware.Logger())

	routes.RegisterRoutes(app, &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authSvc),
		Trabajito:   handlers.NewTrabajitoHandler(trabajitoSvc),
		User:        handlers.NewUserHandler(userSvc),
		Portfolio:   handlers.NewPortfolioHandler(portfolioSvc),
		Catalog:     handlers.NewCatalogHandler(catalogSvc),
		AuthService: authSvc,
	})

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
