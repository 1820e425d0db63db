// main.go
package main

import (
	"log"

	"artisan-market/cmd"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/wire"
	"artisan-market/pkg/database"
	"artisan-market/pkg/mailer"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Mail goes out through RabbitMQ. Registration must not fail when the
	// broker is down, so fall back to a log-only publisher.
	mail, err := mailer.NewPublisher(config.AMQP, logger)
	if err != nil {
		logger.Warn("Mail queue unavailable, using log-only publisher", zap.Error(err))
		mail = mailer.NewNopPublisher(logger)
	}
	defer mail.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, mail, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
