package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Monika-Dangar/real-estate-management/config"
	"github.com/Monika-Dangar/real-estate-management/middleware"
	"github.com/Monika-Dangar/real-estate-management/models"
)

func notificationsCollection() *mongo.Collection {
	collectionName := os.Getenv("MONGODB_COLLECTION_NOTIFICATIONS")
	if collectionName == "" {
		collectionName = "notifications"
	}
	return config.GetCollection(collectionName)
}

// Notifier writes notification records addressed to a user. Writes are
// fire-and-forget: a failed insert is logged and never fails the caller.
type Notifier struct {
	collection *mongo.Collection
}

func NewNotifier() *Notifier {
	return &Notifier{collection: notificationsCollection()}
}

func (n *Notifier) Notify(ctx context.Context, userID primitive.ObjectID, message string) {
	notification := models.Notification{
		ID:             primitive.NewObjectID(),
		User:           userID,
		Message:        message,
		IsRead:         false,
		DeliveryMethod: models.DeliveryEmail,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if _, err := n.collection.InsertOne(ctx, notification); err != nil {
		zap.L().Error("failed to create notification",
			zap.String("user", userID.Hex()),
			zap.Error(err),
		)
	}
}

type NotificationController struct {
	collection *mongo.Collection
}

func NewNotificationController() *NotificationController {
	return &NotificationController{collection: notificationsCollection()}
}

// GetNotifications lists the caller's notifications, newest first.
func (nc *NotificationController) GetNotifications(c echo.Context) error {
	user := middleware.CurrentUser(c)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := nc.collection.Find(c.Request().Context(), bson.M{"user": user.ID}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notifications"})
	}
	defer cursor.Close(c.Request().Context())

	notifications := []models.Notification{}
	if err := cursor.All(c.Request().Context(), &notifications); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notifications"})
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkAsRead flips isRead on the caller's own notification. Marking an
// already-read notification again is a no-op success.
func (nc *NotificationController) MarkAsRead(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notification not found"})
	}

	var notification models.Notification
	err = nc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notification"})
	}

	if notification.User != user.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Not authorized"})
	}

	notification.IsRead = true
	notification.UpdatedAt = time.Now()
	_, err = nc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": notification.UpdatedAt}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update notification"})
	}
	return c.JSON(http.StatusOK, notification)
}
