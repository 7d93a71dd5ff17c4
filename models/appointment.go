package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentType string

const (
	AppointmentVideoCall AppointmentType = "Video Call"
	AppointmentSiteVisit AppointmentType = "Site Visit"
)

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentVideoCall, AppointmentSiteVisit:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Buyer           primitive.ObjectID `json:"buyerId" bson:"buyer"`
	Seller          primitive.ObjectID `json:"sellerId" bson:"seller"`
	Property        primitive.ObjectID `json:"propertyId" bson:"property"`
	Type            AppointmentType    `json:"type" bson:"type"`
	Status          AppointmentStatus  `json:"status" bson:"status"`
	AppointmentDate time.Time          `json:"appointmentDate" bson:"appointmentDate"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CanBeUpdatedBy reports whether the caller may transition this appointment.
// Only the buyer party, the seller party, or an admin qualify.
func (a *Appointment) CanBeUpdatedBy(caller *User) bool {
	switch caller.Role {
	case RoleAdmin:
		return true
	case RoleBuyer, RoleSeller:
		return caller.ID == a.Buyer || caller.ID == a.Seller
	}
	return false
}

// OtherParty picks the notification recipient for a status change: the
// seller when the caller is the buyer, the buyer otherwise. An admin's id
// never matches the buyer reference, so admin-initiated changes always
// notify the buyer.
func (a *Appointment) OtherParty(callerID primitive.ObjectID) primitive.ObjectID {
	if callerID == a.Buyer {
		return a.Seller
	}
	return a.Buyer
}

// BuyerSummary is the read-time join of the requesting buyer's public fields.
type BuyerSummary struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

// PropertySummary is the read-time join of the appointment's listing.
type PropertySummary struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Title    string             `json:"title" bson:"title"`
	Location Location           `json:"location" bson:"location"`
}

// AppointmentDetail is an appointment with buyer and listing joined in.
type AppointmentDetail struct {
	Appointment  `bson:",inline"`
	BuyerInfo    *BuyerSummary    `json:"buyer,omitempty" bson:"buyerDoc,omitempty"`
	PropertyInfo *PropertySummary `json:"property,omitempty" bson:"propertyDoc,omitempty"`
}

type RequestAppointmentRequest struct {
	PropertyID      string          `json:"propertyId" validate:"required"`
	Type            AppointmentType `json:"type" validate:"required,oneof='Video Call' 'Site Visit'"`
	AppointmentDate time.Time       `json:"appointmentDate" validate:"required"`
	Notes           string          `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}
