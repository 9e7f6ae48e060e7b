package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (mongo, postgres, sqlite)
	Driver string

	// URL is the connection string for mongo and postgres
	URL string

	// Name is the MongoDB database name
	Name string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Name: %s, Path: %s}",
		c.Driver, maskURL(c.URL), c.Name, c.Path)
}

// DSN builds a Data Source Name string for the gorm drivers
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return c.URL
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}

func maskURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	return parsed.String()
}
