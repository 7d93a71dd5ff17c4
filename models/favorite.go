package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Buyer     primitive.ObjectID `json:"buyerId" bson:"buyer"`
	Property  primitive.ObjectID `json:"propertyId" bson:"property"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FavoriteDetail is a favorite with the saved listing joined in at read time.
type FavoriteDetail struct {
	Favorite     `bson:",inline"`
	PropertyInfo *Property `json:"property,omitempty" bson:"propertyDoc,omitempty"`
}

type AddFavoriteRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}
