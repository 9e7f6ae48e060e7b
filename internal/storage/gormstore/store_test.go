package gormstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Compile-time interface check
var _ storage.Store = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	return openTestStore(t, &gorm.Config{TranslateError: true})
}

func openTestStore(t *testing.T, cfg *gorm.Config) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)

	// every pooled connection to :memory: would be a different database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))

	s := New(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret", Role: models.RoleUser}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)

	got, err := s.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "secret", got.Password)
	assert.Equal(t, models.RoleUser, got.Role)

	_, err = s.GetUserByEmail(ctx, "ANA@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &models.User{Name: "a", Email: "dup@example.com", Password: "x", Role: models.RoleUser}))
	err := s.CreateUser(ctx, &models.User{Name: "b", Email: "dup@example.com", Password: "y", Role: models.RoleUser})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestRecipeCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)

	recipe := &models.Recipe{Name: "Soup", Ingredients: "water", Preparation: "boil", UserID: "owner-1"}
	require.NoError(t, s.CreateRecipe(ctx, recipe))
	require.NotEmpty(t, recipe.ID)

	got, err := s.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
	assert.Equal(t, "owner-1", got.UserID)
	assert.Empty(t, got.Image)

	updated, err := s.UpdateRecipe(ctx, recipe.ID, models.RecipeFields{Name: "Stew", Ingredients: "", Preparation: "simmer"})
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Name)
	assert.Equal(t, "", updated.Ingredients)
	assert.Equal(t, "owner-1", updated.UserID)

	withImage, err := s.SetRecipeImage(ctx, recipe.ID, "localhost:3000/src/uploads/x.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000/src/uploads/x.jpeg", withImage.Image)
	assert.Equal(t, "Stew", withImage.Name)

	recipes, err = s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	require.NoError(t, s.DeleteRecipe(ctx, recipe.ID))
	_, err = s.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteRecipe(ctx, recipe.ID), storage.ErrNotFound)
}

func TestRecipeInvalidAndUnknownIDs(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"not-a-uuid", "", uuid.NewString()} {
		_, err := s.GetRecipe(ctx, id)
		assert.ErrorIs(t, err, storage.ErrNotFound, "GetRecipe(%q)", id)

		_, err = s.UpdateRecipe(ctx, id, models.RecipeFields{Name: "n"})
		assert.ErrorIs(t, err, storage.ErrNotFound, "UpdateRecipe(%q)", id)

		_, err = s.SetRecipeImage(ctx, id, "p")
		assert.ErrorIs(t, err, storage.ErrNotFound, "SetRecipeImage(%q)", id)

		assert.ErrorIs(t, s.DeleteRecipe(ctx, id), storage.ErrNotFound, "DeleteRecipe(%q)", id)
	}
}

func TestUpdateRecipeAfterDelete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	recipe := &models.Recipe{Name: "Soup", Ingredients: "water", Preparation: "boil", UserID: "owner-1"}
	require.NoError(t, s.CreateRecipe(ctx, recipe))

	// same values still count as a match
	same, err := s.UpdateRecipe(ctx, recipe.ID, models.RecipeFields{Name: "Soup", Ingredients: "water", Preparation: "boil"})
	require.NoError(t, err)
	assert.Equal(t, "Soup", same.Name)

	require.NoError(t, s.DeleteRecipe(ctx, recipe.ID))

	updated, err := s.UpdateRecipe(ctx, recipe.ID, models.RecipeFields{Name: "Stew"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, updated)
}

func TestLookupMissesAreNotLogged(t *testing.T) {
	var out bytes.Buffer
	sink := logrus.New()
	sink.SetOutput(&out)

	s := openTestStore(t, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(sink, logger.Config{
			LogLevel: logger.Warn,
			Colorful: false,
		}),
	})
	ctx := context.Background()

	_, err := s.GetUserByEmail(ctx, "nobody@cookmaster.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetRecipe(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NotContains(t, out.String(), "record not found")
}

func TestPing(t *testing.T) {
	s := setupTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
