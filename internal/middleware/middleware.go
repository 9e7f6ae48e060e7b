package middleware

import (
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// TokenVerifier checks a raw session token and returns the identity it carries
type TokenVerifier interface {
	Verify(token string) (models.Identity, error)
}

// JWTAuth rejects requests without a valid session token and stores the
// caller's identity in the context.
//
// The token is read raw from the authorization header, without a "Bearer"
// scheme. Failures are handed to ErrorHandler.
func JWTAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := tokens.Verify(c.GetHeader("Authorization"))
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserEmail, identity.Email)
		c.Set(ContextUserRole, identity.Role)

		c.Next()
	}
}
