package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAppointmentCanBeUpdatedBy(t *testing.T) {
	buyerID := primitive.NewObjectID()
	sellerID := primitive.NewObjectID()
	appt := Appointment{Buyer: buyerID, Seller: sellerID}

	t.Run("buyer party", func(t *testing.T) {
		assert.True(t, appt.CanBeUpdatedBy(&User{ID: buyerID, Role: RoleBuyer}))
	})

	t.Run("seller party", func(t *testing.T) {
		assert.True(t, appt.CanBeUpdatedBy(&User{ID: sellerID, Role: RoleSeller}))
	})

	t.Run("any admin", func(t *testing.T) {
		assert.True(t, appt.CanBeUpdatedBy(&User{ID: primitive.NewObjectID(), Role: RoleAdmin}))
	})

	t.Run("unrelated buyer", func(t *testing.T) {
		assert.False(t, appt.CanBeUpdatedBy(&User{ID: primitive.NewObjectID(), Role: RoleBuyer}))
	})

	t.Run("unrelated seller", func(t *testing.T) {
		assert.False(t, appt.CanBeUpdatedBy(&User{ID: primitive.NewObjectID(), Role: RoleSeller}))
	})
}

func TestAppointmentOtherParty(t *testing.T) {
	buyerID := primitive.NewObjectID()
	sellerID := primitive.NewObjectID()
	appt := Appointment{Buyer: buyerID, Seller: sellerID}

	t.Run("buyer caller notifies seller", func(t *testing.T) {
		assert.Equal(t, sellerID, appt.OtherParty(buyerID))
	})

	t.Run("seller caller notifies buyer", func(t *testing.T) {
		assert.Equal(t, buyerID, appt.OtherParty(sellerID))
	})

	// An admin's id never equals the buyer reference, so the buyer is
	// always the recipient for admin-initiated changes.
	t.Run("admin caller notifies buyer", func(t *testing.T) {
		assert.Equal(t, buyerID, appt.OtherParty(primitive.NewObjectID()))
	})
}

func TestAppointmentEnums(t *testing.T) {
	assert.True(t, AppointmentVideoCall.IsValid())
	assert.True(t, AppointmentSiteVisit.IsValid())
	assert.False(t, AppointmentType("Phone Call").IsValid())

	assert.True(t, AppointmentScheduled.IsValid())
	assert.True(t, AppointmentCompleted.IsValid())
	assert.True(t, AppointmentCancelled.IsValid())
	assert.False(t, AppointmentStatus("postponed").IsValid())
}
