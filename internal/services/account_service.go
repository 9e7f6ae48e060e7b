package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-recipes-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
)

// AccountService holds the registration and login rules
type AccountService interface {
	// Register creates a user with the "user" role
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	// RegisterAdmin creates an admin on behalf of an authenticated admin
	RegisterAdmin(ctx context.Context, actorRole, name, email, password string) (*models.User, error)
	// Authenticate returns the user matching email and password
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	// EnsureAdmin creates an admin unless one is already registered under email.
	// An email held by a regular user is an error.
	// It bypasses the admin gate and is meant for bootstrapping only.
	EnsureAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error)
}

type accountService struct {
	users  storage.UserStore
	hasher auth.PasswordHasher
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(users storage.UserStore, hasher auth.PasswordHasher) AccountService {
	return &accountService{users: users, hasher: hasher}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.create(ctx, models.RoleUser, name, email, password)
}

func (s *accountService) RegisterAdmin(ctx context.Context, actorRole, name, email, password string) (*models.User, error) {
	if actorRole != models.RoleAdmin {
		return nil, models.NotAdmin
	}
	return s.create(ctx, models.RoleAdmin, name, email, password)
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, models.IncorrectLogin
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// stores with case-insensitive collations may match a different casing
	if user.Email != email || !s.hasher.Compare(user.Password, password) {
		return nil, models.IncorrectLogin
	}
	return user, nil
}

func (s *accountService) EnsureAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	user, err := s.create(ctx, models.RoleAdmin, name, email, password)
	if errors.Is(err, models.EmailExists) {
		existing, getErr := s.users.GetUserByEmail(ctx, email)
		if getErr != nil {
			return nil, false, fmt.Errorf("find user: %w", getErr)
		}
		if !existing.IsAdmin() {
			return nil, false, fmt.Errorf("%s is registered without the admin role", email)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// create checks email uniqueness before inserting. The store's unique index
// catches the requests that race past the check.
func (s *accountService) create(ctx context.Context, role, name, email, password string) (*models.User, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, models.EmailExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, models.EmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
