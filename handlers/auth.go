package handlers

import (
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monika-Dangar/real-estate-management/config"
	"github.com/Monika-Dangar/real-estate-management/models"
	"github.com/Monika-Dangar/real-estate-management/utils"
)

func usersCollection() *mongo.Collection {
	collectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if collectionName == "" {
		collectionName = "users"
	}
	return config.GetCollection(collectionName)
}

type AuthController struct {
	collection *mongo.Collection
}

func NewAuthController() *AuthController {
	return &AuthController{collection: usersCollection()}
}

func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}

	count, err := ac.collection.CountDocuments(c.Request().Context(), bson.M{"email": req.Email})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check user existence"})
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "User already exists"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to hash password"})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      role,
		Status:    role.InitialStatus(),
		IsPaid:    false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := ac.collection.InsertOne(c.Request().Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	var user models.User
	err := ac.collection.FindOne(c.Request().Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	if user.Status == models.UserStatusBlocked {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "User is blocked"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// GoogleLogin is a mock OAuth upsert: a known email logs in, an unknown one
// becomes a new active buyer with a random password.
func (ac *AuthController) GoogleLogin(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": errs})
	}

	var user models.User
	err := ac.collection.FindOne(c.Request().Context(), bson.M{"email": req.Email}).Decode(&user)
	if err == nil {
		if user.Status == models.UserStatusBlocked {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "User is blocked"})
		}

		token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
		}

		user.Password = ""
		return c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
	}
	if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up user"})
	}

	hashedPassword, err := utils.HashPassword(randomPassword())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to hash password"})
	}

	user = models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      models.RoleBuyer,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := ac.collection.InsertOne(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user})
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomPassword() string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = passwordAlphabet[rand.Intn(len(passwordAlphabet))]
	}
	return string(b) + "A1!"
}
