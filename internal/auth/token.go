package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// DefaultTokenTTL is how long a session token stays valid
const DefaultTokenTTL = 2 * time.Hour

// SessionData is the identity carried inside a session token
type SessionData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims are the JWT claims of a session token. The identity sits under
// "data", next to the registered iat/exp claims.
type Claims struct {
	Data SessionData `json:"data"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
// Tokens are stateless: nothing is persisted server side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with secret.
// A non positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given identity
func (s *TokenService) Issue(userID, email, role string) (string, error) {
	now := s.now()
	claims := Claims{
		Data: SessionData{ID: userID, Email: email, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns the identity it carries.
// An empty string fails with models.MissingToken. Every other failure
// (bad signature, wrong format, unexpected algorithm, expiry) fails with
// models.MalformedToken.
func (s *TokenService) Verify(tokenString string) (models.Identity, error) {
	if tokenString == "" {
		return models.Identity{}, models.MissingToken
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		log.WithError(err).Debug("Rejected session token")
		return models.Identity{}, models.MalformedToken
	}

	return models.Identity{
		UserID: claims.Data.ID,
		Email:  claims.Data.Email,
		Role:   claims.Data.Role,
	}, nil
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Data.ID == "" || claims.Data.Role == "" {
		return nil, errors.New("token missing identity data")
	}
	return claims, nil
}
