package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Monika-Dangar/real-estate-management/models"
	"github.com/Monika-Dangar/real-estate-management/utils"
)

type fakeResolver struct {
	users map[primitive.ObjectID]*models.User
}

func (r *fakeResolver) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.New("not found")
}

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestProtect(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		ID:     primitive.NewObjectID(),
		Name:   "Amy",
		Email:  "amy@example.com",
		Role:   models.RoleSeller,
		Status: models.UserStatusActive,
	}
	resolver := &fakeResolver{users: map[primitive.ObjectID]*models.User{user.ID: user}}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		c, rec := newTestContext("")
		err := Protect(resolver)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		c, rec := newTestContext("Token " + token)
		err := Protect(resolver)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		c, rec := newTestContext("Bearer not.a.jwt")
		err := Protect(resolver)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		c, rec := newTestContext("Bearer " + token)
		err := Protect(resolver)(func(c echo.Context) error {
			attached := CurrentUser(c)
			require.NotNil(t, attached)
			assert.Equal(t, user.ID, attached.ID)
			assert.Equal(t, models.RoleSeller, attached.Role)
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		ghost, err := utils.GenerateJWT(primitive.NewObjectID(), "gone@example.com", models.RoleBuyer)
		require.NoError(t, err)

		c, rec := newTestContext("Bearer " + ghost)
		err = Protect(resolver)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalProtect(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	resolver := &fakeResolver{users: map[primitive.ObjectID]*models.User{user.ID: user}}

	t.Run("anonymous passes through", func(t *testing.T) {
		c, rec := newTestContext("")
		err := OptionalProtect(resolver)(func(c echo.Context) error {
			assert.Nil(t, CurrentUser(c))
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		token, err := utils.GenerateJWT(user.ID, "admin@example.com", user.Role)
		require.NoError(t, err)

		c, rec := newTestContext("Bearer " + token)
		err = OptionalProtect(resolver)(func(c echo.Context) error {
			require.NotNil(t, CurrentUser(c))
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		c, rec := newTestContext("")
		c.Set("user", &models.User{Role: models.RoleAdmin})
		err := Authorize(models.RoleAdmin)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role outside the set is forbidden", func(t *testing.T) {
		c, rec := newTestContext("")
		c.Set("user", &models.User{Role: models.RoleBuyer})
		err := Authorize(models.RoleSeller, models.RoleAdmin)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		c, rec := newTestContext("")
		err := Authorize(models.RoleAdmin)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
