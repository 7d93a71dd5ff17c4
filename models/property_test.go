package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPropertyVisibleTo(t *testing.T) {
	sellerID := primitive.NewObjectID()
	pending := Property{Seller: sellerID, Status: PropertyStatusPending}
	approved := Property{Seller: sellerID, Status: PropertyStatusApproved}

	t.Run("approved is public", func(t *testing.T) {
		assert.True(t, approved.VisibleTo(nil))
		assert.True(t, approved.VisibleTo(&User{ID: primitive.NewObjectID(), Role: RoleBuyer}))
	})

	t.Run("pending hidden from anonymous", func(t *testing.T) {
		assert.False(t, pending.VisibleTo(nil))
	})

	t.Run("pending hidden from buyers", func(t *testing.T) {
		assert.False(t, pending.VisibleTo(&User{ID: primitive.NewObjectID(), Role: RoleBuyer}))
	})

	t.Run("pending visible to owning seller", func(t *testing.T) {
		assert.True(t, pending.VisibleTo(&User{ID: sellerID, Role: RoleSeller}))
	})

	t.Run("pending hidden from other sellers", func(t *testing.T) {
		assert.False(t, pending.VisibleTo(&User{ID: primitive.NewObjectID(), Role: RoleSeller}))
	})

	t.Run("pending visible to admins", func(t *testing.T) {
		assert.True(t, pending.VisibleTo(&User{ID: primitive.NewObjectID(), Role: RoleAdmin}))
	})

	t.Run("rejected follows the same rule", func(t *testing.T) {
		rejected := Property{Seller: sellerID, Status: PropertyStatusRejected}
		assert.False(t, rejected.VisibleTo(nil))
		assert.True(t, rejected.VisibleTo(&User{ID: sellerID, Role: RoleSeller}))
	})
}

func TestCanSetPropertyStatus(t *testing.T) {
	assert.True(t, RoleAdmin.CanSetPropertyStatus())
	assert.False(t, RoleSeller.CanSetPropertyStatus())
	assert.False(t, RoleBuyer.CanSetPropertyStatus())
}

func TestPropertyStatusValidity(t *testing.T) {
	assert.True(t, PropertyStatusPending.IsValid())
	assert.True(t, PropertyStatusApproved.IsValid())
	assert.True(t, PropertyStatusRejected.IsValid())
	assert.False(t, PropertyStatus("draft").IsValid())
}
