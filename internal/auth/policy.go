// Package auth holds the session token service, password hashing and the
// rule deciding who may change a recipe.
package auth

import "github.com/franciscosanchezn/gin-recipes-api/internal/models"

// CanMutate reports whether an actor may update, delete or attach an image
// to a resource owned by resourceOwnerID. Admins may change anything;
// everyone else only what they own.
//
// Callers must check the resource exists first: a missing resource is never
// passed here.
func CanMutate(actorID, actorRole, resourceOwnerID string) bool {
	if actorRole == models.RoleAdmin {
		return true
	}
	return actorID != "" && actorID == resourceOwnerID
}
