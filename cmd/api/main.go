package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/database"
	"github.com/pageza/fitplan/backend/internal/logging"
	"github.com/pageza/fitplan/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
		LogJSON:     cfg.LogJSON,
	})
	logrus.WithField("environment", cfg.Environment).Info("Configuration loaded")

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	opts := server.Options{}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, profile rate limiting disabled")
	} else if redisClient != nil {
		defer redisClient.Close()
		opts.Redis = redisClient
	}

	if cfg.ArchiveEnabled() {
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			logrus.Fatalf("Failed to initialize recommendation archive: %v", err)
		}
		opts.Archive = s3cfg
	}

	srv := server.New(cfg, db, opts)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logrus.Fatalf("Server error: %v", err)
		}
		return
	case sig := <-quit:
		logrus.Infof("Received signal: %v", sig)
	}

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server shutdown error: %v", err)
		return
	}
	logrus.Info("Server stopped")
}
