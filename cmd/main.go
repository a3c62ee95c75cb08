package main

import (
	"github.com/trabajitos-sv/trabajitos-api/internal/app"
	"github.com/trabajitos-sv/trabajitos-api/internal/config"
	"github.com/trabajitos-sv/trabajitos-api/internal/db"
	"github.com/trabajitos-sv/trabajitos-api/internal/logger"
	"github.com/trabajitos-sv/trabajitos-api/internal/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Initialize(cfg.LogLevel)

	database, err := db.New(cfg.DSN())
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}

	server := app.New(database, cfg.JWTSecret, mailer.NewLogMailer())

	logger.Infof("listening on :%s", cfg.Port)
	logger.Fatal(server.Listen(":" + cfg.Port))
}
