package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusRejected PropertyStatus = "rejected"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusPending, PropertyStatusApproved, PropertyStatusRejected:
		return true
	}
	return false
}

// CanSetPropertyStatus reports whether the role may move a listing between
// pending/approved/rejected. Only admins moderate listings; sellers and
// buyers have no transition path.
func (r Role) CanSetPropertyStatus() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleBuyer, RoleSeller:
		return false
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

type Location struct {
	City        string       `json:"city" bson:"city"`
	Locality    string       `json:"locality" bson:"locality"`
	State       string       `json:"state" bson:"state"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type BudgetRange struct {
	Min float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// Videos holds URL mockups for the sample flat and locality walkthroughs.
type Videos struct {
	SampleFlat       string `json:"sampleFlat,omitempty" bson:"sampleFlat,omitempty"`
	BuildingLocality string `json:"buildingLocality,omitempty" bson:"buildingLocality,omitempty"`
}

type Property struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Seller         primitive.ObjectID `json:"sellerId" bson:"seller"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Price          float64            `json:"price" bson:"price"`
	Configuration  string             `json:"configuration" bson:"configuration"`
	Location       Location           `json:"location" bson:"location"`
	BudgetRange    *BudgetRange       `json:"budgetRange,omitempty" bson:"budgetRange,omitempty"`
	PossessionDate time.Time          `json:"possessionDate" bson:"possessionDate"`
	Amenities      []string           `json:"amenities" bson:"amenities"`
	Videos         *Videos            `json:"videos,omitempty" bson:"videos,omitempty"`
	IsPremium      bool               `json:"isPremium" bson:"isPremium"`
	Status         PropertyStatus     `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VisibleTo reports whether the caller may see this listing. Approved
// listings are public; everything else is visible only to the owning seller
// and admins. A nil caller is an anonymous request.
func (p *Property) VisibleTo(caller *User) bool {
	if p.Status == PropertyStatusApproved {
		return true
	}
	if caller == nil {
		return false
	}
	return caller.Role == RoleAdmin || caller.ID == p.Seller
}

// SellerSummary is the read-time join of the owning seller's public fields.
type SellerSummary struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

// PropertyDetail is a listing with the seller denormalized in at query time.
type PropertyDetail struct {
	Property   `bson:",inline"`
	SellerInfo *SellerSummary `json:"seller,omitempty" bson:"sellerDoc,omitempty"`
}

type CreatePropertyRequest struct {
	Title          string       `json:"title" validate:"required"`
	Description    string       `json:"description" validate:"required"`
	Price          float64      `json:"price" validate:"required,gt=0"`
	Configuration  string       `json:"configuration" validate:"required"`
	Location       Location     `json:"location" validate:"required"`
	BudgetRange    *BudgetRange `json:"budgetRange"`
	PossessionDate time.Time    `json:"possessionDate" validate:"required"`
	Amenities      []string     `json:"amenities"`
	Videos         *Videos      `json:"videos"`
	IsPremium      bool         `json:"isPremium"`
}

type UpdatePropertyRequest struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Price          float64      `json:"price" validate:"omitempty,gt=0"`
	Configuration  string       `json:"configuration"`
	Location       *Location    `json:"location"`
	BudgetRange    *BudgetRange `json:"budgetRange"`
	PossessionDate *time.Time   `json:"possessionDate"`
	Amenities      []string     `json:"amenities"`
	Videos         *Videos      `json:"videos"`
	IsPremium      *bool        `json:"isPremium"`
}

type UpdatePropertyStatusRequest struct {
	Status PropertyStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}
