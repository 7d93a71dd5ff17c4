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

func propertiesCollection() *mongo.Collection {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return config.GetCollection(collectionName)
}

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	return &PropertyController{collection: propertiesCollection()}
}

// sellerLookupStages join the owning seller's name and email into each
// result at read time.
func sellerLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "seller",
			"foreignField": "_id",
			"as":           "sellerDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$sellerDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{"sellerDoc.password": 0}}},
	}
}

// ListProperties searches approved listings with the optional filter set.
// Admins see listings in every status.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	approvedOnly := caller == nil || caller.Role != models.RoleAdmin

	filters := ParsePropertyFilters(c)

	pipeline := []bson.D{
		{{Key: "$match", Value: filters.Query(approvedOnly)}},
		{{Key: "$sort", Value: PropertySort()}},
	}
	pipeline = append(pipeline, sellerLookupStages()...)

	cursor, err := pc.collection.Aggregate(c.Request().Context(), pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(c.Request().Context())

	properties := []models.PropertyDetail{}
	if err := cursor.All(c.Request().Context(), &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

// GetProperty fetches one listing. Unapproved listings look like a 404 to
// everyone but the owning seller and admins.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, sellerLookupStages()...)

	cursor, err := pc.collection.Aggregate(c.Request().Context(), pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	defer cursor.Close(c.Request().Context())

	var results []models.PropertyDetail
	if err := cursor.All(c.Request().Context(), &results); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if len(results) == 0 || !results[0].VisibleTo(middleware.CurrentUser(c)) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found or not approved yet"})
	}
	return c.JSON(http.StatusOK, results[0])
}

// CreateProperty lists a new property for an active, paid seller. New
// listings always start pending regardless of the request body.
func (pc *PropertyController) CreateProperty(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if !caller.CanList() {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "You must have an active and paid account to list properties",
		})
	}

	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	property := models.Property{
		ID:             primitive.NewObjectID(),
		Seller:         caller.ID,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Configuration:  req.Configuration,
		Location:       req.Location,
		BudgetRange:    req.BudgetRange,
		PossessionDate: req.PossessionDate,
		Amenities:      req.Amenities,
		Videos:         req.Videos,
		IsPremium:      req.IsPremium,
		Status:         models.PropertyStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}

	if _, err := pc.collection.InsertOne(c.Request().Context(), property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	return c.JSON(http.StatusCreated, property)
}

// UpdateProperty lets the owning seller change listing fields. Status is
// not touched here; only admins move it, via UpdatePropertyStatus.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	var property models.Property
	err = pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if property.Seller != caller.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "User not authorized to update this property"})
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Title != "" {
		updateDoc["title"] = req.Title
	}
	if req.Description != "" {
		updateDoc["description"] = req.Description
	}
	if req.Price != 0 {
		updateDoc["price"] = req.Price
	}
	if req.Configuration != "" {
		updateDoc["configuration"] = req.Configuration
	}
	if req.Location != nil {
		updateDoc["location"] = req.Location
	}
	if req.BudgetRange != nil {
		updateDoc["budgetRange"] = req.BudgetRange
	}
	if req.PossessionDate != nil {
		updateDoc["possessionDate"] = req.PossessionDate
	}
	if req.Amenities != nil {
		updateDoc["amenities"] = req.Amenities
	}
	if req.Videos != nil {
		updateDoc["videos"] = req.Videos
	}
	if req.IsPremium != nil {
		updateDoc["isPremium"] = *req.IsPremium
	}

	_, err = pc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	err = pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}
	return c.JSON(http.StatusOK, property)
}

// GetMyProperties lists the caller's own listings in every status.
func (pc *PropertyController) GetMyProperties(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	cursor, err := pc.collection.Find(c.Request().Context(), bson.M{"seller": caller.ID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(c.Request().Context())

	properties := []models.Property{}
	if err := cursor.All(c.Request().Context(), &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

// UpdatePropertyStatus is the admin approval/rejection transition.
func (pc *PropertyController) UpdatePropertyStatus(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if !caller.Role.CanSetPropertyStatus() {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "User not authorized to moderate listings"})
	}

	var req models.UpdatePropertyStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !req.Status.IsValid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	var property models.Property
	err = pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	property.Status = req.Status
	property.UpdatedAt = time.Now()
	_, err = pc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": property.Status, "updatedAt": property.UpdatedAt}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}
	return c.JSON(http.StatusOK, property)
}
