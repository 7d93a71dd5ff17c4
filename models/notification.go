package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryMethod string

const (
	DeliveryEmail    DeliveryMethod = "email"
	DeliverySMS      DeliveryMethod = "sms"
	DeliveryWhatsApp DeliveryMethod = "whatsapp"
)

func (m DeliveryMethod) IsValid() bool {
	switch m {
	case DeliveryEmail, DeliverySMS, DeliveryWhatsApp:
		return true
	}
	return false
}

type Notification struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"userId" bson:"user"`
	Message        string             `json:"message" bson:"message"`
	IsRead         bool               `json:"isRead" bson:"isRead"`
	DeliveryMethod DeliveryMethod     `json:"deliveryMethod" bson:"deliveryMethod"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
