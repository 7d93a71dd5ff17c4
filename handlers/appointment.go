package handlers

import (
	"fmt"
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

type AppointmentController struct {
	collection *mongo.Collection
	properties *mongo.Collection
	notifier   *Notifier
}

func NewAppointmentController(notifier *Notifier) *AppointmentController {
	collectionName := os.Getenv("MONGODB_COLLECTION_APPOINTMENTS")
	if collectionName == "" {
		collectionName = "appointments"
	}
	return &AppointmentController{
		collection: config.GetCollection(collectionName),
		properties: propertiesCollection(),
		notifier:   notifier,
	}
}

func appointmentRequestedMessage(t models.AppointmentType, buyerName, locality string) string {
	return fmt.Sprintf("New %s requested by buyer %s for property in %s", t, buyerName, locality)
}

func appointmentStatusMessage(status models.AppointmentStatus, t models.AppointmentType) string {
	return fmt.Sprintf("Appointment status updated to %s for %s", status, t)
}

// RequestAppointment books a video call or site visit. Buyer and seller are
// derived from the caller and the listing owner, never from the body.
func (ac *AppointmentController) RequestAppointment(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var req models.RequestAppointmentRequest
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

	var property models.Property
	err = ac.properties.FindOne(c.Request().Context(), bson.M{"_id": propertyID}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	appointment := models.Appointment{
		ID:              primitive.NewObjectID(),
		Buyer:           caller.ID,
		Seller:          property.Seller,
		Property:        propertyID,
		Type:            req.Type,
		Status:          models.AppointmentScheduled,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if _, err := ac.collection.InsertOne(c.Request().Context(), appointment); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create appointment"})
	}

	ac.notifier.Notify(c.Request().Context(), property.Seller,
		appointmentRequestedMessage(req.Type, caller.Name, property.Location.Locality))

	return c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments scoped to the caller: buyers see their
// own requests, sellers the ones against their listings, admins everything.
func (ac *AppointmentController) GetAppointments(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	query := bson.M{}
	switch caller.Role {
	case models.RoleBuyer:
		query["buyer"] = caller.ID
	case models.RoleSeller:
		query["seller"] = caller.ID
	case models.RoleAdmin:
		// admins see all
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: query}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "buyer",
			"foreignField": "_id",
			"as":           "buyerDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$buyerDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
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
		{{Key: "$project", Value: bson.M{"buyerDoc.password": 0}}},
	}

	cursor, err := ac.collection.Aggregate(c.Request().Context(), pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch appointments"})
	}
	defer cursor.Close(c.Request().Context())

	appointments := []models.AppointmentDetail{}
	if err := cursor.All(c.Request().Context(), &appointments); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch appointments"})
	}
	return c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus transitions an appointment. Only the buyer party,
// the seller party, or an admin may do so; the other party is notified.
func (ac *AppointmentController) UpdateAppointmentStatus(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var req models.UpdateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !req.Status.IsValid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Appointment not found"})
	}

	var appointment models.Appointment
	err = ac.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch appointment"})
	}

	if !appointment.CanBeUpdatedBy(caller) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "User not authorized to update this appointment"})
	}

	appointment.Status = req.Status
	appointment.UpdatedAt = time.Now()
	_, err = ac.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": appointment.Status, "updatedAt": appointment.UpdatedAt}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update appointment"})
	}

	ac.notifier.Notify(c.Request().Context(), appointment.OtherParty(caller.ID),
		appointmentStatusMessage(appointment.Status, appointment.Type))

	return c.JSON(http.StatusOK, appointment)
}
