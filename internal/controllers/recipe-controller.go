package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/franciscosanchezn/gin-recipes-api/internal/images"
	"github.com/franciscosanchezn/gin-recipes-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/services"
	"github.com/franciscosanchezn/gin-recipes-api/internal/validation"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// ImageField is the multipart field carrying a recipe image
const ImageField = "image"

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// GetAllRecipes retrieves all recipes
	GetAllRecipes(c *gin.Context)
	// GetRecipeByID retrieves a recipe by its ID
	GetRecipeByID(c *gin.Context)
	// CreateRecipe creates a recipe owned by the caller
	CreateRecipe(c *gin.Context)
	// UpdateRecipe replaces the fields of a recipe
	UpdateRecipe(c *gin.Context)
	// DeleteRecipe deletes a recipe by its ID
	DeleteRecipe(c *gin.Context)
	// UploadImage attaches a JPEG image to a recipe
	UploadImage(c *gin.Context)
}

type controller struct {
	service        services.RecipeService
	maxUploadBytes int64
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService, maxUploadBytes int64) RecipeController {
	return &controller{service: service, maxUploadBytes: maxUploadBytes}
}

// RecipeResponse wraps a created recipe
type RecipeResponse struct {
	Recipe *models.Recipe `json:"recipe"`
}

// GetAllRecipes godoc
// @Summary Get all recipes
// @Description Get every recipe in storage order
// @Tags recipes
// @Produce json
// @Success 200 {array} models.Recipe
// @Failure 500 {object} MessageResponse
// @Router /recipes [get]
func (c *controller) GetAllRecipes(ctx *gin.Context) {
	recipes, err := c.service.ListAll(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetRecipeByID godoc
// @Summary Get recipe by ID
// @Description Get a single recipe by its ID
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 404 {object} MessageResponse
// @Router /recipes/{id} [get]
func (c *controller) GetRecipeByID(ctx *gin.Context) {
	recipe, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe owned by the authenticated user
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body object true "name, ingredients and preparation"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Security TokenAuth
// @Router /recipes [post]
func (c *controller) CreateRecipe(ctx *gin.Context) {
	actor, err := middleware.MustIdentity(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	fields, err := validation.NewRecipe(bindPayload(ctx))
	if err != nil {
		ctx.Error(err)
		return
	}

	recipe, err := c.service.Create(ctx.Request.Context(), fields, actor.UserID)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, RecipeResponse{Recipe: recipe})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replace name, ingredients and preparation. Owners and admins only.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body object true "name, ingredients and preparation"
// @Success 200 {object} models.Recipe
// @Failure 401 {object} MessageResponse
// @Security TokenAuth
// @Router /recipes/{id} [put]
func (c *controller) UpdateRecipe(ctx *gin.Context) {
	actor, err := middleware.MustIdentity(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	fields := validation.RecipeUpdate(bindPayload(ctx))

	recipe, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), actor, fields)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Permanently remove a recipe. Owners and admins only.
// @Tags recipes
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 401 {object} MessageResponse
// @Security TokenAuth
// @Router /recipes/{id} [delete]
func (c *controller) DeleteRecipe(ctx *gin.Context) {
	actor, err := middleware.MustIdentity(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"), actor); err != nil {
		ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload a recipe image
// @Description Attach a JPEG image to a recipe. Owners and admins only.
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Recipe ID"
// @Param image formData file true "JPEG image"
// @Success 200 {object} models.Recipe
// @Failure 401 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 415 {object} MessageResponse
// @Security TokenAuth
// @Router /recipes/{id}/image [put]
func (c *controller) UploadImage(ctx *gin.Context) {
	actor, err := middleware.MustIdentity(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	// ownership decides before the body is looked at
	if err := c.service.Authorize(ctx.Request.Context(), ctx.Param("id"), actor); err != nil {
		ctx.Error(err)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	header, err := ctx.FormFile(ImageField)
	if err != nil {
		ctx.Error(models.InvalidEntries)
		return
	}

	file, err := openJPEG(header)
	if err != nil {
		ctx.Error(err)
		return
	}
	defer file.Close()

	recipe, err := c.service.AttachImage(ctx.Request.Context(), ctx.Param("id"), actor, file, header.Size)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// openJPEG opens an uploaded part and checks its content is a JPEG. The
// returned file is rewound to the start.
func openJPEG(header *multipart.FileHeader) (multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, models.InvalidEntries
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	if !mtype.Is(images.ContentType) {
		file.Close()
		return nil, models.InvalidImage
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// ImageController serves stored recipe images
type ImageController struct {
	store images.Store
}

// NewImageController creates a new instance of ImageController
func NewImageController(store images.Store) *ImageController {
	return &ImageController{store: store}
}

// GetImage godoc
// @Summary Get a recipe image
// @Description Stream a stored image by file name, e.g. <recipe id>.jpeg
// @Tags images
// @Produce jpeg
// @Param file path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} MessageResponse
// @Router /images/{file} [get]
func (ic *ImageController) GetImage(c *gin.Context) {
	rc, err := ic.store.Open(c.Request.Context(), c.Param("file"))
	if errors.Is(err, images.ErrNotFound) {
		c.Error(models.ImageNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, images.ContentType, rc, nil)
}
