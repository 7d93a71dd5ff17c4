package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Monika-Dangar/real-estate-management/models"
	"github.com/Monika-Dangar/real-estate-management/utils"
)

const userContextKey = "user"

// UserResolver looks up the token subject in the persistence layer.
type UserResolver interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// MongoUserResolver resolves users from the users collection, excluding
// the password field.
type MongoUserResolver struct {
	Collection *mongo.Collection
}

func (r *MongoUserResolver) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Protect authenticates the bearer token and attaches the resolved user to
// the request context. A token whose subject no longer exists is rejected.
func Protect(users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := resolveUser(c, users)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Not authorized, token failed",
				})
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// OptionalProtect attaches the user when a valid bearer token is present
// and lets the request through anonymously otherwise. Public listing
// routes use it so admins and owning sellers see unapproved records.
func OptionalProtect(users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := resolveUser(c, users); ok {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

// Authorize rejects callers whose role is outside the allowed set. Must be
// composed after Protect.
func Authorize(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Not authorized, no token",
				})
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "User role " + string(user.Role) + " is not authorized to access this route",
			})
		}
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func resolveUser(c echo.Context, users UserResolver) (*models.User, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateJWT(parts[1])
	if err != nil {
		return nil, false
	}

	user, err := users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
