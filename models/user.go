package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// InitialStatus returns the status a freshly registered account starts in.
// Sellers must pay the listing fee (or be approved by an admin) before going active.
func (r Role) InitialStatus() UserStatus {
	switch r {
	case RoleSeller:
		return UserStatusPending
	default:
		return UserStatusActive
	}
}

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusBlocked:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      Role               `json:"role" bson:"role"`
	Status    UserStatus         `json:"status" bson:"status"`
	IsPaid    bool               `json:"isPaid" bson:"isPaid"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CanList reports whether the user may create property listings.
// Both conditions must hold at the same time.
func (u *User) CanList() bool {
	return u.Role == RoleSeller && u.IsPaid && u.Status == UserStatusActive
}

// MarkFeePaid applies the seller fee payment: isPaid is set unconditionally,
// but only a pending seller is auto-advanced to active. A blocked seller who
// pays stays blocked.
func (u *User) MarkFeePaid() {
	u.IsPaid = true
	if u.Status == UserStatusPending {
		u.Status = UserStatusActive
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"omitempty,oneof=buyer seller admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GoogleID string `json:"googleId"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" validate:"required,oneof=pending active blocked"`
}
