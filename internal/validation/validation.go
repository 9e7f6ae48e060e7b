// Package validation checks the shape of inbound JSON payloads before they
// reach a service. Payloads are decoded as generic objects so a field sent
// with the wrong JSON type is caught here.
package validation

import (
	"strings"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
)

// Payload is a decoded JSON object
type Payload map[string]interface{}

// NewUserInput is a validated registration payload
type NewUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is a validated login payload
type LoginInput struct {
	Email    string
	Password string
}

// NewUser requires name, email and password as non empty strings and a
// plausible email
func NewUser(p Payload) (NewUserInput, error) {
	name, okName := nonEmptyString(p, "name")
	email, okEmail := nonEmptyString(p, "email")
	password, okPassword := nonEmptyString(p, "password")

	if !okName || !okEmail || !okPassword || !EmailFormat(email) {
		return NewUserInput{}, models.InvalidEntries
	}
	return NewUserInput{Name: name, Email: email, Password: password}, nil
}

// Login requires email and password and a plausible email
func Login(p Payload) (LoginInput, error) {
	email, okEmail := nonEmptyString(p, "email")
	password, okPassword := nonEmptyString(p, "password")

	if !okEmail || !okPassword || !EmailFormat(email) {
		return LoginInput{}, models.InvalidFields
	}
	return LoginInput{Email: email, Password: password}, nil
}

// NewRecipe requires name, ingredients and preparation
func NewRecipe(p Payload) (models.RecipeFields, error) {
	name, okName := nonEmptyString(p, "name")
	ingredients, okIngredients := nonEmptyString(p, "ingredients")
	preparation, okPreparation := nonEmptyString(p, "preparation")

	if !okName || !okIngredients || !okPreparation {
		return models.RecipeFields{}, models.InvalidEntries
	}
	return models.RecipeFields{Name: name, Ingredients: ingredients, Preparation: preparation}, nil
}

// RecipeUpdate reads the editable fields without requiring them: absent or
// non string fields become empty and overwrite the stored value
func RecipeUpdate(p Payload) models.RecipeFields {
	name, _ := p["name"].(string)
	ingredients, _ := p["ingredients"].(string)
	preparation, _ := p["preparation"].(string)
	return models.RecipeFields{Name: name, Ingredients: ingredients, Preparation: preparation}
}

// EmailFormat is a weak heuristic: the address must contain "@" and "."
func EmailFormat(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func nonEmptyString(p Payload, key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok && v != ""
}
