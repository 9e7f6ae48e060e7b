package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/gin-recipes-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipes-api/internal/images"
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage/gormstore"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *gormstore.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormstore.AutoMigrate(db))

	s := gormstore.New(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func setupImageStore(t *testing.T) *images.DiskStore {
	s, err := images.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return s
}

// fast bcrypt keeps the suite quick
var testHasher = auth.BcryptHasher{Cost: bcrypt.MinCost}

// racingUserStore reports every email as free and then hits the unique
// index, the way two concurrent registrations would
type racingUserStore struct {
	storage.UserStore
}

func (racingUserStore) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, storage.ErrNotFound
}

func (racingUserStore) CreateUser(context.Context, *models.User) error {
	return storage.ErrDuplicate
}

// brokenStore fails every call with a driver error
type brokenStore struct {
	storage.Store
}

var errBroken = errors.New("connection reset")

func (brokenStore) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, errBroken
}

func (brokenStore) GetRecipe(context.Context, string) (*models.Recipe, error) {
	return nil, errBroken
}
