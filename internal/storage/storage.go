// Package storage defines the persistence contracts used by the services.
//
// Backends (mongostore, gormstore) translate their driver errors into the
// sentinels below so callers never depend on a specific engine.
package storage

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
)

var (
	// ErrNotFound is returned when no record matches, including ids that
	// are not valid for the backend
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert
	ErrDuplicate = errors.New("duplicate: entity already exists")
)

// UserStore persists user records
type UserStore interface {
	// CreateUser inserts the user and fills in its ID
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns ErrNotFound when no user has that email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RecipeStore persists recipe records
type RecipeStore interface {
	// CreateRecipe inserts the recipe and fills in its ID
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	// UpdateRecipe overwrites name, ingredients and preparation
	UpdateRecipe(ctx context.Context, id string, fields models.RecipeFields) (*models.Recipe, error)
	SetRecipeImage(ctx context.Context, id, imagePath string) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// Store is an open handle on a backend. It is created once at startup and
// must be closed on shutdown.
type Store interface {
	UserStore
	RecipeStore
	Ping(ctx context.Context) error
	Close() error
}
