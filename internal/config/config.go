package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Supported values for DB_DRIVER
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported values for IMAGE_STORAGE
const (
	ImageStorageDisk  = "disk"
	ImageStorageMinIO = "minio"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver    string `json:"db_driver"`
	DatabaseURL string `json:"database_url"`
	DBName      string `json:"db_name"`
	DBPath      string `json:"db_path"`

	// Security Configuration
	JWTSecret      string        `json:"jwt_secret"`
	TokenTTL       time.Duration `json:"token_ttl"`
	PasswordHasher string        `json:"password_hasher"`

	// Image configuration
	ImageStorage   string `json:"image_storage"`
	UploadDir      string `json:"upload_dir"`
	ImageBaseURL   string `json:"image_base_url"`
	MaxUploadBytes int64  `json:"max_upload_bytes"`
	MinIOEndpoint  string `json:"minio_endpoint"`
	MinIOAccessKey string `json:"minio_access_key"`
	MinIOSecretKey string `json:"minio_secret_key"`
	MinIOBucket    string `json:"minio_bucket"`
	MinIOUseSSL    bool   `json:"minio_use_ssl"`

	// First admin bootstrap, skipped when AdminEmail is empty
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DatabaseURL: %s, DBName: %s, DBPath: %s, JWTSecret: [REDACTED], TokenTTL: %s, PasswordHasher: %s, ImageStorage: %s, UploadDir: %s, ImageBaseURL: %s, MaxUploadBytes: %d, MinIOEndpoint: %s, MinIOAccessKey: [REDACTED], MinIOSecretKey: [REDACTED], MinIOBucket: %s, AdminEmail: %s, AdminPassword: [REDACTED]}",
		c.Environment, c.Port, c.Host, c.DBDriver, maskDatabaseURL(c.DatabaseURL), c.DBName, c.DBPath,
		c.TokenTTL, c.PasswordHasher, c.ImageStorage, c.UploadDir, c.ImageBaseURL, c.MaxUploadBytes,
		c.MinIOEndpoint, c.MinIOBucket, c.AdminEmail)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates the database driver, DatabaseURL and the image backend
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	tokenTTL, err := time.ParseDuration(GetEnvWithDefault("TOKEN_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:       strings.ToLower(GetEnvWithDefault("DB_DRIVER", DriverMongo)),
		DatabaseURL:    GetEnvWithDefault("DATABASE_URL", "mongodb://localhost:27017"),
		DBName:         GetEnvWithDefault("DB_NAME", "Cookmaster"),
		DBPath:         GetEnvWithDefault("DB_PATH", "cookmaster.sqlite"),
		JWTSecret:      GetEnvWithDefault("JWT_SECRET", "secret"),
		TokenTTL:       tokenTTL,
		PasswordHasher: GetEnvWithDefault("PASSWORD_HASHER", "bcrypt"),
		ImageStorage:   strings.ToLower(GetEnvWithDefault("IMAGE_STORAGE", ImageStorageDisk)),
		UploadDir:      GetEnvWithDefault("UPLOAD_DIR", "uploads"),
		ImageBaseURL:   GetEnvWithDefault("IMAGE_BASE_URL", "localhost:3000/src/uploads"),
		MaxUploadBytes: GetEnvAsType[int64]("MAX_UPLOAD_BYTES", 5<<20),
		MinIOEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinIOAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinIOBucket:    GetEnvWithDefault("MINIO_BUCKET", "cookmaster"),
		MinIOUseSSL:    GetEnvAsType("MINIO_USE_SSL", false),
		AdminName:      GetEnvWithDefault("ADMIN_NAME", "admin"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMongo, DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL environment variable is required")
		}
		// validate URL with net/url
		if _, err := url.ParseRequestURI(c.DatabaseURL); err != nil {
			return fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH environment variable is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (supported: mongo, postgres, sqlite)", c.DBDriver)
	}

	switch c.ImageStorage {
	case ImageStorageDisk:
	case ImageStorageMinIO:
		if c.MinIOEndpoint == "" {
			return errors.New("MINIO_ENDPOINT environment variable is required for minio image storage")
		}
	default:
		return fmt.Errorf("unsupported IMAGE_STORAGE %q (supported: disk, minio)", c.ImageStorage)
	}

	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.AdminEmail != "" && c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	return nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(durationValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
