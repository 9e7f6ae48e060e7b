package validation

import (
	"testing"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	testCases := []struct {
		name    string
		payload Payload
		valid   bool
	}{
		{name: "valid", payload: Payload{"name": "n", "email": "a@e.com", "password": "p"}, valid: true},
		{name: "missing name", payload: Payload{"email": "a@e.com", "password": "p"}},
		{name: "missing email", payload: Payload{"name": "n", "password": "p"}},
		{name: "missing password", payload: Payload{"name": "n", "email": "a@e.com"}},
		{name: "empty password", payload: Payload{"name": "n", "email": "a@e.com", "password": ""}},
		{name: "numeric password", payload: Payload{"name": "n", "email": "a@e.com", "password": float64(123456)}},
		{name: "email without at", payload: Payload{"name": "n", "email": "ae.com", "password": "p"}},
		{name: "email without dot", payload: Payload{"name": "n", "email": "a@ecom", "password": "p"}},
		{name: "nil payload", payload: nil},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewUser(tt.payload)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, NewUserInput{Name: "n", Email: "a@e.com", Password: "p"}, in)
				return
			}
			assert.ErrorIs(t, err, models.InvalidEntries)
		})
	}
}

func TestLogin(t *testing.T) {
	in, err := Login(Payload{"email": "a@e.com", "password": "p"})
	require.NoError(t, err)
	assert.Equal(t, LoginInput{Email: "a@e.com", Password: "p"}, in)

	for _, p := range []Payload{
		{"password": "p"},
		{"email": "a@e.com"},
		{"email": "plainaddress", "password": "p"},
		{},
	} {
		_, err := Login(p)
		assert.ErrorIs(t, err, models.InvalidFields, "payload %v", p)
	}
}

func TestNewRecipe(t *testing.T) {
	fields, err := NewRecipe(Payload{"name": "r", "ingredients": "i", "preparation": "p"})
	require.NoError(t, err)
	assert.Equal(t, models.RecipeFields{Name: "r", Ingredients: "i", Preparation: "p"}, fields)

	for _, p := range []Payload{
		{"ingredients": "i", "preparation": "p"},
		{"name": "r", "preparation": "p"},
		{"name": "r", "ingredients": "i"},
		{"name": "r", "ingredients": []interface{}{"i"}, "preparation": "p"},
	} {
		_, err := NewRecipe(p)
		assert.ErrorIs(t, err, models.InvalidEntries, "payload %v", p)
	}
}

func TestRecipeUpdate(t *testing.T) {
	fields := RecipeUpdate(Payload{"name": "r", "ingredients": 3})
	assert.Equal(t, models.RecipeFields{Name: "r"}, fields)
}
