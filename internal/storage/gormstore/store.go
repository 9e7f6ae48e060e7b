// Package gormstore implements storage.Store on top of gorm, for Postgres
// and SQLite deployments. Records are keyed by UUID strings.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the gorm backed implementation of storage.Store
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection. Call AutoMigrate before first use.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the users and recipes tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}); err != nil {
		return fmt.Errorf("gormstore: migrate: %w", err)
	}
	return nil
}

// wrapError converts gorm errors into storage sentinels
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrDuplicate
	}
	// drivers that do not translate errors
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key") {
		return fmt.Errorf("%w: %s", storage.ErrDuplicate, msg)
	}
	return err
}

// validID reports whether id can name a record in this backend
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return wrapError(s.db.WithContext(ctx).Create(user).Error)
}

// findOne loads the first row matching query into dest. Misses return
// storage.ErrNotFound without going through gorm.ErrRecordNotFound.
func (s *Store) findOne(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	result := s.db.WithContext(ctx).Where(query, args...).Limit(1).Find(dest)
	if result.Error != nil {
		return wrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.findOne(ctx, &user, "email = ?", email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	return wrapError(s.db.WithContext(ctx).Create(recipe).Error)
}

func (s *Store) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&recipes).Error; err != nil {
		return nil, wrapError(err)
	}
	return recipes, nil
}

func (s *Store) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	var recipe models.Recipe
	if err := s.findOne(ctx, &recipe, "id = ?", id); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *Store) UpdateRecipe(ctx context.Context, id string, fields models.RecipeFields) (*models.Recipe, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	// a map so empty strings are written too
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        fields.Name,
		"ingredients": fields.Ingredients,
		"preparation": fields.Preparation,
	})
	if result.Error != nil {
		return nil, wrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.GetRecipe(ctx, id)
}

func (s *Store) SetRecipeImage(ctx context.Context, id, imagePath string) (*models.Recipe, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Update("image", imagePath)
	if result.Error != nil {
		return nil, wrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.GetRecipe(ctx, id)
}

func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	if !validID(id) {
		return storage.ErrNotFound
	}
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Recipe{})
	if result.Error != nil {
		return wrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Ping verifies the underlying connection is alive
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
