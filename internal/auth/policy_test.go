package auth

import (
	"testing"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	testCases := []struct {
		name     string
		actorID  string
		role     string
		ownerID  string
		expected bool
	}{
		{name: "user owns resource", actorID: "u1", role: models.RoleUser, ownerID: "u1", expected: true},
		{name: "user does not own resource", actorID: "u1", role: models.RoleUser, ownerID: "u2", expected: false},
		{name: "admin on foreign resource", actorID: "a1", role: models.RoleAdmin, ownerID: "u2", expected: true},
		{name: "admin owns resource", actorID: "a1", role: models.RoleAdmin, ownerID: "a1", expected: true},
		{name: "unknown role on foreign resource", actorID: "u1", role: "superuser", ownerID: "u2", expected: false},
		{name: "empty actor never matches", actorID: "", role: models.RoleUser, ownerID: "", expected: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanMutate(tt.actorID, tt.role, tt.ownerID))
		})
	}
}
