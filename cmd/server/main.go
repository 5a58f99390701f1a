package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/application"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/auth"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/config"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/database"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/events"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/health"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/kafka"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/repository"
)

const serviceName = "service-isochrone"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("profile_source", cfg.ProfileSource),
	)

	// Initialize profile catalogue
	var (
		db       *gorm.DB
		profiles routing.ProfileRepository
	)
	switch cfg.ProfileSource {
	case config.ProfileSourceDatabase:
		db, err = database.Connect(*cfg.DBConfig, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}

		// Run database migrations
		if cfg.AppEnv == "development" {
			if err := db.AutoMigrate(&repository.ProfileModel{}); err != nil {
				log.Fatal("failed to run auto-migration", zap.Error(err))
			}
			log.Info("database migration completed (dev auto-migrate)")
		} else if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		profiles = repository.NewGormProfileRepository(db)
	default:
		fileRepo, err := repository.LoadFileProfileRepository(cfg.ProfilesFile)
		if err != nil {
			log.Fatal("failed to load profile catalogue", zap.String("path", cfg.ProfilesFile), zap.Error(err))
		}
		profiles = fileRepo
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, cfg.JWTConfig.AccessTTL)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()
	dispatcher := events.NewIsochroneDispatcher(kafkaProducer, log)

	// Initialize application services
	converter := application.NewIsochroneConverter(routing.NewCatalogueBuilder(profiles))
	isochroneService := application.NewIsochroneService(converter, profiles, dispatcher, log)
	profileService := application.NewProfileService(profiles, log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	health.NewHandler(db, serviceName).RegisterRoutes(router)

	// Register routes
	handler.NewIsochroneHandler(isochroneService).RegisterRoutes(&router.RouterGroup)
	handler.NewAdminProfileHandler(profileService).RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
