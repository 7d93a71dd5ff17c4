package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Monika-Dangar/real-estate-management/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateJWT(userID, "buyer@example.com", models.RoleBuyer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, models.RoleBuyer, claims.Role)
}

func TestGenerateJWTWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(primitive.NewObjectID(), "x@example.com", models.RoleBuyer)
	require.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(primitive.NewObjectID(), "x@example.com", models.RoleSeller)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateJWT(token)
	require.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2secret", hash)

	assert.NoError(t, CheckPassword(hash, "hunter2secret"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}
