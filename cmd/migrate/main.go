// Command migrate runs the schema migrations and status seeding against the
// configured database, without starting the API server.
package main

import (
	"github.com/trabajitos-sv/trabajitos-api/internal/config"
	"github.com/trabajitos-sv/trabajitos-api/internal/db"
	"github.com/trabajitos-sv/trabajitos-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Initialize(cfg.LogLevel)

	if _, err := db.New(cfg.DSN()); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}
	logger.Info("migrations applied")
}
