package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monika-Dangar/real-estate-management/models"
)

func TestValidateRegisterRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{
			Name:     "Amy",
			Email:    "amy@example.com",
			Password: "secret123",
			Role:     models.RoleSeller,
		})
		assert.Nil(t, errs)
	})

	t.Run("role optional", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: "secret123",
		})
		assert.Nil(t, errs)
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{})
		require.Len(t, errs, 3)

		fields := make(map[string]string)
		for _, fe := range errs {
			fields[fe.Field] = fe.Message
		}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("bad email", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{
			Name:     "Amy",
			Email:    "not-an-email",
			Password: "secret123",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "must be a valid email address", errs[0].Message)
	})

	t.Run("short password", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{
			Name:     "Amy",
			Email:    "amy@example.com",
			Password: "abc",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "password", errs[0].Field)
	})

	t.Run("unknown role", func(t *testing.T) {
		errs := ValidateStruct(models.RegisterRequest{
			Name:     "Amy",
			Email:    "amy@example.com",
			Password: "secret123",
			Role:     "landlord",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "role", errs[0].Field)
	})
}

func TestValidateStatusRequests(t *testing.T) {
	assert.Nil(t, ValidateStruct(models.UpdateUserStatusRequest{Status: models.UserStatusBlocked}))
	assert.NotNil(t, ValidateStruct(models.UpdateUserStatusRequest{Status: "archived"}))
	assert.NotNil(t, ValidateStruct(models.UpdateUserStatusRequest{}))

	assert.Nil(t, ValidateStruct(models.UpdatePropertyStatusRequest{Status: models.PropertyStatusApproved}))
	assert.NotNil(t, ValidateStruct(models.UpdatePropertyStatusRequest{Status: "live"}))
}
