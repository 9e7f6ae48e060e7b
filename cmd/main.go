package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/gin-recipes-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipes-api/internal/config"
	"github.com/franciscosanchezn/gin-recipes-api/internal/database"
	"github.com/franciscosanchezn/gin-recipes-api/internal/images"
	"github.com/franciscosanchezn/gin-recipes-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipes-api/internal/routes"
	"github.com/franciscosanchezn/gin-recipes-api/internal/services"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// @title Cookmaster API
// @version 1.0
// @description Recipe sharing API with user accounts and image uploads
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Raw session token returned by /login, without a Bearer prefix.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	if configuration.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize store
	store := setupStore(ctx, configuration)
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("Failed to close store")
		}
	}()

	imageStore := setupImageStore(ctx, configuration)

	hasher, err := auth.NewPasswordHasher(configuration.PasswordHasher)
	checkPanicErr(err)

	// Initialize services
	accounts := services.NewAccountService(store, hasher)
	recipes := services.NewRecipeService(store, imageStore, configuration.ImageBaseURL)
	tokens := auth.NewTokenService(configuration.JWTSecret, configuration.TokenTTL)

	seedAdmin(ctx, accounts, configuration)

	router := routes.NewRouter(routes.Dependencies{
		Accounts:           accounts,
		Recipes:            recipes,
		Tokens:             tokens,
		Images:             imageStore,
		Store:              store,
		Metrics:            middleware.NewMetrics(routes.ServiceName),
		Logger:             log,
		MaxUploadBytes:     configuration.MaxUploadBytes,
		HideInternalErrors: configuration.IsProduction(),
	})

	// Start the server
	runServer(ctx, router, configuration.Addr())
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupStore opens the configured store once for the whole process
func setupStore(ctx context.Context, conf *config.Config) storage.Store {
	store, err := database.Open(ctx, database.DatabaseConfig{
		Driver: conf.DBDriver,
		URL:    conf.DatabaseURL,
		Name:   conf.DBName,
		Path:   conf.DBPath,
	})
	checkPanicErr(err)
	return store
}

// setupImageStore selects where uploaded images live
func setupImageStore(ctx context.Context, conf *config.Config) images.Store {
	switch conf.ImageStorage {
	case config.ImageStorageMinIO:
		store, err := images.NewMinIOStore(ctx, images.MinIOConfig{
			Endpoint:  conf.MinIOEndpoint,
			AccessKey: conf.MinIOAccessKey,
			SecretKey: conf.MinIOSecretKey,
			Bucket:    conf.MinIOBucket,
			UseSSL:    conf.MinIOUseSSL,
		})
		checkPanicErr(err)
		return store
	default:
		store, err := images.NewDiskStore(conf.UploadDir)
		checkPanicErr(err)
		return store
	}
}

// seedAdmin creates the first admin when ADMIN_EMAIL is set. Admins can only
// be registered by other admins, so this is how the first one appears.
func seedAdmin(ctx context.Context, accounts services.AccountService, conf *config.Config) {
	if conf.AdminEmail == "" {
		log.Debug("ADMIN_EMAIL not set, skipping admin seed")
		return
	}

	admin, created, err := accounts.EnsureAdmin(ctx, conf.AdminName, conf.AdminEmail, conf.AdminPassword)
	checkPanicErr(err)
	if created {
		log.WithField("email", admin.Email).Info("Seeded initial admin")
	} else {
		log.WithField("email", admin.Email).Info("Admin already present")
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests
func runServer(ctx context.Context, router *gin.Engine, addr string) {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
