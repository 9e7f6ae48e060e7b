package mongostore

import (
	"context"
	"time"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/franciscosanchezn/gin-recipes-api/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type recipeDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	Name        string        `bson:"name"`
	Ingredients string        `bson:"ingredients"`
	Preparation string        `bson:"preparation"`
	UserID      string        `bson:"userId"`
	Image       string        `bson:"image,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d recipeDoc) model() *models.Recipe {
	return &models.Recipe{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Ingredients: d.Ingredients,
		Preparation: d.Preparation,
		UserID:      d.UserID,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
	}
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	doc := recipeDoc{
		ID:          bson.NewObjectID(),
		Name:        recipe.Name,
		Ingredients: recipe.Ingredients,
		Preparation: recipe.Preparation,
		UserID:      recipe.UserID,
		Image:       recipe.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.col(ColRecipes).InsertOne(ctx, doc); err != nil {
		return wrapError(err)
	}
	recipe.ID = doc.ID.Hex()
	recipe.CreatedAt = doc.CreatedAt
	return nil
}

func (s *Store) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.col(ColRecipes).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	for cursor.Next(ctx) {
		var doc recipeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		recipes = append(recipes, *doc.model())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Store) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc recipeDoc
	if err := s.col(ColRecipes).FindOne(ctx, byID(oid)).Decode(&doc); err != nil {
		return nil, wrapError(err)
	}
	return doc.model(), nil
}

func (s *Store) UpdateRecipe(ctx context.Context, id string, fields models.RecipeFields) (*models.Recipe, error) {
	return s.setFields(ctx, id, bson.D{
		{Key: "name", Value: fields.Name},
		{Key: "ingredients", Value: fields.Ingredients},
		{Key: "preparation", Value: fields.Preparation},
	})
}

func (s *Store) SetRecipeImage(ctx context.Context, id, imagePath string) (*models.Recipe, error) {
	return s.setFields(ctx, id, bson.D{{Key: "image", Value: imagePath}})
}

// setFields applies $set to one recipe and returns the updated document
func (s *Store) setFields(ctx context.Context, id string, set bson.D) (*models.Recipe, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc recipeDoc
	err = s.col(ColRecipes).FindOneAndUpdate(ctx, byID(oid), bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		return nil, wrapError(err)
	}
	return doc.model(), nil
}

func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col(ColRecipes).DeleteOne(ctx, byID(oid))
	if err != nil {
		return wrapError(err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
