package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported PASSWORD_HASHER values
const (
	HasherBcrypt = "bcrypt"
	HasherPlain  = "plain"
)

// PasswordHasher turns passwords into their stored form and checks them
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored value
	Compare(stored, password string) bool
}

// NewPasswordHasher returns the hasher registered under name
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case HasherBcrypt, "":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	case HasherPlain:
		log.Warn("PASSWORD_HASHER=plain stores passwords in clear text; use only with legacy fixture data")
		return PlainHasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported password hasher: %s (supported: bcrypt, plain)", name)
	}
}

// BcryptHasher stores salted bcrypt hashes
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// PlainHasher keeps passwords as given. It exists so databases seeded with
// clear text passwords keep working.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainHasher) Compare(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
