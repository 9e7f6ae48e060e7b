package models

import (
	"time"
)

// Recipe represents a recipe with its properties.
// UserID is the owner and never changes after creation.
type Recipe struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name"`
	Ingredients string    `json:"ingredients"`
	Preparation string    `json:"preparation"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// RecipeFields are the user editable fields of a recipe
type RecipeFields struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Preparation string `json:"preparation"`
}

// Identity is the caller extracted from a verified session token
type Identity struct {
	UserID string
	Email  string
	Role   string
}
