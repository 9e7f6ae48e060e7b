package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/franciscosanchezn/gin-recipes-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipes-api/internal/images"
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// RecipeService provides the recipe operations. Every mutation goes through
// the ownership check; a missing recipe and a forbidden one fail the same way
// so callers cannot probe for ids they do not own.
type RecipeService interface {
	// Create stores a recipe owned by ownerID
	Create(ctx context.Context, fields models.RecipeFields, ownerID string) (*models.Recipe, error)
	// ListAll returns every stored recipe
	ListAll(ctx context.Context) ([]models.Recipe, error)
	// GetByID fails with models.RecipeNotFound
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	// Update overwrites name, ingredients and preparation
	Update(ctx context.Context, id string, actor models.Identity, fields models.RecipeFields) (*models.Recipe, error)
	// Delete removes the recipe permanently
	Delete(ctx context.Context, id string, actor models.Identity) error
	// Authorize fails with models.Unauthorized unless actor may change the recipe
	Authorize(ctx context.Context, id string, actor models.Identity) error
	// AttachImage stores a JPEG for the recipe and records its path
	AttachImage(ctx context.Context, id string, actor models.Identity, image io.Reader, size int64) (*models.Recipe, error)
}

type recipeService struct {
	recipes      storage.RecipeStore
	images       images.Store
	imageBaseURL string
}

// NewRecipeService creates a new instance of RecipeService.
// imageBaseURL prefixes the stored image path, e.g. "localhost:3000/src/uploads".
func NewRecipeService(recipes storage.RecipeStore, imageStore images.Store, imageBaseURL string) RecipeService {
	return &recipeService{
		recipes:      recipes,
		images:       imageStore,
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
	}
}

func (s *recipeService) Create(ctx context.Context, fields models.RecipeFields, ownerID string) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Name:        fields.Name,
		Ingredients: fields.Ingredients,
		Preparation: fields.Preparation,
		UserID:      ownerID,
	}
	if err := s.recipes.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) ListAll(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := s.recipes.GetRecipe(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, models.RecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, id string, actor models.Identity, fields models.RecipeFields) (*models.Recipe, error) {
	if _, err := s.authorize(ctx, id, actor); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.UpdateRecipe(ctx, id, fields)
	if err != nil {
		return nil, s.mutationError("update recipe", err)
	}
	return recipe, nil
}

func (s *recipeService) Delete(ctx context.Context, id string, actor models.Identity) error {
	recipe, err := s.authorize(ctx, id, actor)
	if err != nil {
		return err
	}

	if err := s.recipes.DeleteRecipe(ctx, id); err != nil {
		return s.mutationError("delete recipe", err)
	}

	if recipe.Image != "" {
		if err := s.images.Delete(ctx, images.FileName(id)); err != nil {
			log.WithError(err).WithField("recipe_id", id).Warn("Failed to remove image of deleted recipe")
		}
	}
	return nil
}

func (s *recipeService) AttachImage(ctx context.Context, id string, actor models.Identity, image io.Reader, size int64) (*models.Recipe, error) {
	if _, err := s.authorize(ctx, id, actor); err != nil {
		return nil, err
	}

	name := images.FileName(id)
	if err := s.images.Save(ctx, name, image, size); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	recipe, err := s.recipes.SetRecipeImage(ctx, id, s.imageBaseURL+"/"+name)
	if err != nil {
		return nil, s.mutationError("set recipe image", err)
	}
	return recipe, nil
}

func (s *recipeService) Authorize(ctx context.Context, id string, actor models.Identity) error {
	_, err := s.authorize(ctx, id, actor)
	return err
}

// authorize loads the recipe and applies the ownership rule
func (s *recipeService) authorize(ctx context.Context, id string, actor models.Identity) (*models.Recipe, error) {
	recipe, err := s.recipes.GetRecipe(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, models.Unauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if !auth.CanMutate(actor.UserID, actor.Role, recipe.UserID) {
		return nil, models.Unauthorized
	}
	return recipe, nil
}

// mutationError keeps the not-found masking when a recipe vanishes between
// the check and the write
func (s *recipeService) mutationError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return models.Unauthorized
	}
	return fmt.Errorf("%s: %w", op, err)
}
