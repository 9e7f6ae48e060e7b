package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-recipes-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/services"
	"github.com/franciscosanchezn/gin-recipes-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// AuthController handles registration and login
type AuthController struct {
	accounts services.AccountService
	tokens   TokenIssuer
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(accounts services.AccountService, tokens TokenIssuer) *AuthController {
	return &AuthController{
		accounts: accounts,
		tokens:   tokens,
	}
}

// UserResponse wraps a created user
type UserResponse struct {
	User *models.User `json:"user"`
}

// TokenResponse carries a session token
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of every error response
type MessageResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a user
// @Description Create an account with the "user" role
// @Tags users
// @Accept json
// @Produce json
// @Param user body object true "name, email and password"
// @Success 201 {object} UserResponse
// @Failure 400 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /users [post]
func (ac *AuthController) Register(c *gin.Context) {
	input, err := validation.NewUser(bindPayload(c))
	if err != nil {
		c.Error(err)
		return
	}

	user, err := ac.accounts.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: user})
}

// RegisterAdmin godoc
// @Summary Register an admin
// @Description Create an account with the "admin" role. Only admins may call it.
// @Tags users
// @Accept json
// @Produce json
// @Param user body object true "name, email and password"
// @Success 201 {object} UserResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Security TokenAuth
// @Router /users/admin [post]
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	actor, err := middleware.MustIdentity(c)
	if err != nil {
		c.Error(err)
		return
	}

	input, err := validation.NewUser(bindPayload(c))
	if err != nil {
		c.Error(err)
		return
	}

	user, err := ac.accounts.RegisterAdmin(c.Request.Context(), actor.Role, input.Name, input.Email, input.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: user})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a session token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body object true "email and password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} MessageResponse
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	input, err := validation.Login(bindPayload(c))
	if err != nil {
		c.Error(err)
		return
	}

	user, err := ac.accounts.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := ac.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// bindPayload decodes the JSON body as a generic object. A missing or
// malformed body becomes an empty payload so validation reports it.
func bindPayload(c *gin.Context) validation.Payload {
	var payload validation.Payload
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		return validation.Payload{}
	}
	return payload
}
