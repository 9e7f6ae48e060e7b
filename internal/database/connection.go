package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// retryDelays is the backoff between connection attempts. Only Postgres is
// retried; a SQLite file either opens or it does not.
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

// InitDatabase opens a gorm connection for the postgres or sqlite driver and
// verifies it with a ping. Driver errors are translated so unique violations
// surface as gorm.ErrDuplicatedKey.
func InitDatabase(ctx context.Context, cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	dialector, attempts, err := dialectorFor(driver, cfg)
	if err != nil {
		return nil, err
	}

	entry := log.WithFields(logrus.Fields{"db_driver": driver, "db": cfg.String()})
	entry.Info("Initializing database connection")

	for attempt := 1; ; attempt++ {
		var db *gorm.DB
		db, err = connect(ctx, dialector)
		if err == nil {
			entry.WithField("attempt", attempt).Info("Database initialized successfully")
			return db, nil
		}
		if attempt >= attempts {
			break
		}

		delay := retryDelays[attempt-1]
		entry.WithError(err).WithFields(logrus.Fields{"attempt": attempt, "delay": delay}).Warn("Database connection attempt failed, retrying")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// dialectorFor picks the gorm driver and how many attempts it gets
func dialectorFor(driver string, cfg DatabaseConfig) (gorm.Dialector, int, error) {
	switch driver {
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN()), len(retryDelays) + 1, nil
	case "sqlite", "":
		return sqlite.Open(cfg.DSN()), 1, nil
	default:
		return nil, 0, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

func connect(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	configurePool(sqlDB, dialector.Name())
	return db, nil
}

// configurePool sizes the pool for the driver. SQLite allows one writer at
// a time, so it gets a single connection.
func configurePool(sqlDB *sql.DB, dialect string) {
	if dialect == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
}
