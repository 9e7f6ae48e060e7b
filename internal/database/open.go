package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage/gormstore"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage/mongostore"
	"github.com/sirupsen/logrus"
)

// Open connects the store selected by cfg.Driver. MongoDB is served by
// mongostore; postgres and sqlite go through InitDatabase and gormstore
// after migrating the schema.
func Open(ctx context.Context, cfg DatabaseConfig) (storage.Store, error) {
	log.WithFields(logrus.Fields{"config": cfg.String()}).Info("Opening store")

	switch strings.ToLower(cfg.Driver) {
	case "mongo", "mongodb":
		return mongostore.NewStore(ctx, cfg.URL, cfg.Name)

	case "postgres", "postgresql", "sqlite", "":
		db, err := InitDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := gormstore.AutoMigrate(db); err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		return gormstore.New(db), nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: mongo, postgres, sqlite)", cfg.Driver)
	}
}
