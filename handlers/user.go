package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Monika-Dangar/real-estate-management/middleware"
	"github.com/Monika-Dangar/real-estate-management/models"
	"github.com/Monika-Dangar/real-estate-management/utils"
)

type UserController struct {
	collection *mongo.Collection
}

func NewUserController() *UserController {
	return &UserController{collection: usersCollection()}
}

// GetUsers lists all accounts for admins, passwords excluded.
func (uc *UserController) GetUsers(c echo.Context) error {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := uc.collection.Find(c.Request().Context(), bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	defer cursor.Close(c.Request().Context())

	users := []models.User{}
	if err := cursor.All(c.Request().Context(), &users); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserStatus lets an admin set any of pending/active/blocked directly.
func (uc *UserController) UpdateUserStatus(c echo.Context) error {
	var req models.UpdateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid status", "details": errs})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	var user models.User
	err = uc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}

	user.Status = req.Status
	user.UpdatedAt = time.Now()
	_, err = uc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": user.Status, "updatedAt": user.UpdatedAt}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     user.ID,
		"name":   user.Name,
		"status": user.Status,
	})
}

// PaySellerFee mocks the listing-fee payment. isPaid is always set; a
// pending seller is auto-activated, a blocked one stays blocked.
func (uc *UserController) PaySellerFee(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var user models.User
	err := uc.collection.FindOne(c.Request().Context(), bson.M{"_id": caller.ID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}

	if user.Role != models.RoleSeller {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only sellers can pay the fee"})
	}

	user.MarkFeePaid()
	user.UpdatedAt = time.Now()
	_, err = uc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"isPaid": user.IsPaid, "status": user.Status, "updatedAt": user.UpdatedAt}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Payment mock successful",
		"isPaid":  user.IsPaid,
		"status":  user.Status,
	})
}

// GetProfile returns the authenticated user's own record.
func (uc *UserController) GetProfile(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err := uc.collection.FindOne(c.Request().Context(), bson.M{"_id": caller.ID}, opts).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, user)
}
