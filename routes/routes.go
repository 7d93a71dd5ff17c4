package routes

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/Monika-Dangar/real-estate-management/config"
	"github.com/Monika-Dangar/real-estate-management/handlers"
	"github.com/Monika-Dangar/real-estate-management/middleware"
	"github.com/Monika-Dangar/real-estate-management/models"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running...")
	})
	e.GET("/health", handlers.HealthCheck)

	usersCollection := os.Getenv("MONGODB_COLLECTION_USERS")
	if usersCollection == "" {
		usersCollection = "users"
	}
	resolver := &middleware.MongoUserResolver{Collection: config.GetCollection(usersCollection)}
	protect := middleware.Protect(resolver)
	optional := middleware.OptionalProtect(resolver)

	notifier := handlers.NewNotifier()

	authController := handlers.NewAuthController()
	userController := handlers.NewUserController()
	propertyController := handlers.NewPropertyController()
	favoriteController := handlers.NewFavoriteController()
	appointmentController := handlers.NewAppointmentController(notifier)
	notificationController := handlers.NewNotificationController()
	uploadController := handlers.NewUploadController(&cfg.Upload)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/google-login", authController.GoogleLogin)

	users := api.Group("/users")
	users.GET("/profile", userController.GetProfile, protect)
	users.POST("/pay-fee", userController.PaySellerFee, protect, middleware.Authorize(models.RoleSeller))
	users.GET("", userController.GetUsers, protect, middleware.Authorize(models.RoleAdmin))
	users.PUT("/:id/status", userController.UpdateUserStatus, protect, middleware.Authorize(models.RoleAdmin))

	properties := api.Group("/properties")
	properties.GET("", propertyController.ListProperties, optional)
	properties.POST("", propertyController.CreateProperty, protect, middleware.Authorize(models.RoleSeller))
	properties.GET("/my-properties", propertyController.GetMyProperties, protect, middleware.Authorize(models.RoleSeller))
	properties.GET("/:id", propertyController.GetProperty, optional)
	properties.PUT("/:id", propertyController.UpdateProperty, protect, middleware.Authorize(models.RoleSeller))
	properties.PUT("/:id/status", propertyController.UpdatePropertyStatus, protect, middleware.Authorize(models.RoleAdmin))

	favorites := api.Group("/favorites", protect, middleware.Authorize(models.RoleBuyer))
	favorites.POST("", favoriteController.AddFavorite)
	favorites.GET("", favoriteController.GetFavorites)
	favorites.DELETE("/:id", favoriteController.RemoveFavorite)

	appointments := api.Group("/appointments", protect)
	appointments.POST("", appointmentController.RequestAppointment, middleware.Authorize(models.RoleBuyer))
	appointments.GET("", appointmentController.GetAppointments)
	appointments.PUT("/:id/status", appointmentController.UpdateAppointmentStatus)

	notifications := api.Group("/notifications", protect)
	notifications.GET("", notificationController.GetNotifications)
	notifications.PUT("/:id/read", notificationController.MarkAsRead)

	api.POST("/upload", uploadController.UploadMedia, protect, middleware.Authorize(models.RoleSeller))
}
