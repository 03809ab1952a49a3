// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"fitness-booking/cmd"
	"fitness-booking/internal/data/repository"
	"fitness-booking/internal/wire"
	"fitness-booking/pkg/database"
	"fitness-booking/pkg/events"
	"fitness-booking/pkg/utils"

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
		zap.String("timezone", config.App.Timezone),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Apply schema migrations
	if config.Database.Migrate {
		if err := database.Migrate(config.Database, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Event publisher
	var publisher events.Publisher = events.NoopPublisher{}
	if config.Events.RabbitURL != "" {
		rabbit, err := events.NewRabbitPublisher(config.Events.RabbitURL, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			publisher = rabbit
		}
	}
	defer publisher.Close()

	// Wire all dependencies
	app, err := wire.Wiring(db, repos, publisher, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}
	defer app.Close()

	if err := app.Service.Auth.EnsureAdmin(ctx, config.Admin.Username, config.Admin.Password); err != nil {
		logger.Fatal("Failed to provision admin user", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
