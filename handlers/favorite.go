package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monika-Dangar/real-estate-management/config"
	"github.com/Monika-Dangar/real-estate-management/middleware"
	"github.com/Monika-Dangar/real-estate-management/models"
	"github.com/Monika-Dangar/real-estate-management/utils"
)

type FavoriteController struct {
	collection *mongo.Collection
	properties *mongo.Collection
}

func NewFavoriteController() *FavoriteController {
	collectionName := os.Getenv("MONGODB_COLLECTION_FAVORITES")
	if collectionName == "" {
		collectionName = "favorites"
	}
	return &FavoriteController{
		collection: config.GetCollection(collectionName),
		properties: propertiesCollection(),
	}
}

// AddFavorite bookmarks a listing for the buyer. The compound unique index
// on (buyer, property) rejects duplicates.
func (fc *FavoriteController) AddFavorite(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var req models.AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	count, err := fc.properties.CountDocuments(c.Request().Context(), bson.M{"_id": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check property"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	favorite := models.Favorite{
		ID:        primitive.NewObjectID(),
		Buyer:     caller.ID,
		Property:  propertyID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := fc.collection.InsertOne(c.Request().Context(), favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property already in favorites"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add favorite"})
	}
	return c.JSON(http.StatusCreated, favorite)
}

// GetFavorites lists the buyer's bookmarks with the listing joined in.
func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"buyer": caller.ID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "properties",
			"localField":   "property",
			"foreignField": "_id",
			"as":           "propertyDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$propertyDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := fc.collection.Aggregate(c.Request().Context(), pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
	}
	defer cursor.Close(c.Request().Context())

	favorites := []models.FavoriteDetail{}
	if err := cursor.All(c.Request().Context(), &favorites); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
	}
	return c.JSON(http.StatusOK, favorites)
}

// RemoveFavorite deletes the buyer's own bookmark by favorite id.
func (fc *FavoriteController) RemoveFavorite(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Favorite not found"})
	}

	var favorite models.Favorite
	err = fc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&favorite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Favorite not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorite"})
	}

	if favorite.Buyer != caller.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "User not authorized to remove this favorite"})
	}

	if _, err := fc.collection.DeleteOne(c.Request().Context(), bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove favorite"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite removed"})
}
