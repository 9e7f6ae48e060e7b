package middleware

import (
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/gin-gonic/gin"
)

// CurrentIdentity returns the caller set by JWTAuth. ok is false on routes
// that are not behind JWTAuth.
func CurrentIdentity(c *gin.Context) (identity models.Identity, ok bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return models.Identity{}, false
	}
	return models.Identity{
		UserID: userID,
		Email:  c.GetString(ContextUserEmail),
		Role:   c.GetString(ContextUserRole),
	}, true
}

// MustIdentity is CurrentIdentity for handlers mounted behind JWTAuth. A
// missing identity is reported as a missing token.
func MustIdentity(c *gin.Context) (models.Identity, error) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return models.Identity{}, models.MissingToken
	}
	return identity, nil
}
