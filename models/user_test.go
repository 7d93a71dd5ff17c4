package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleInitialStatus(t *testing.T) {
	assert.Equal(t, UserStatusPending, RoleSeller.InitialStatus())
	assert.Equal(t, UserStatusActive, RoleBuyer.InitialStatus())
	assert.Equal(t, UserStatusActive, RoleAdmin.InitialStatus())
}

func TestMarkFeePaid(t *testing.T) {
	t.Run("pending seller is activated", func(t *testing.T) {
		u := User{Role: RoleSeller, Status: UserStatusPending}
		u.MarkFeePaid()
		assert.True(t, u.IsPaid)
		assert.Equal(t, UserStatusActive, u.Status)
	})

	t.Run("blocked seller stays blocked", func(t *testing.T) {
		u := User{Role: RoleSeller, Status: UserStatusBlocked}
		u.MarkFeePaid()
		assert.True(t, u.IsPaid)
		assert.Equal(t, UserStatusBlocked, u.Status)
	})

	t.Run("active seller keeps status", func(t *testing.T) {
		u := User{Role: RoleSeller, Status: UserStatusActive}
		u.MarkFeePaid()
		assert.True(t, u.IsPaid)
		assert.Equal(t, UserStatusActive, u.Status)
	})
}

func TestCanList(t *testing.T) {
	cases := []struct {
		name   string
		user   User
		expect bool
	}{
		{"active paid seller", User{Role: RoleSeller, Status: UserStatusActive, IsPaid: true}, true},
		{"active unpaid seller", User{Role: RoleSeller, Status: UserStatusActive, IsPaid: false}, false},
		{"pending paid seller", User{Role: RoleSeller, Status: UserStatusPending, IsPaid: true}, false},
		{"blocked paid seller", User{Role: RoleSeller, Status: UserStatusBlocked, IsPaid: true}, false},
		{"buyer", User{Role: RoleBuyer, Status: UserStatusActive, IsPaid: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.user.CanList())
		})
	}
}

func TestRoleAndStatusValidity(t *testing.T) {
	assert.True(t, RoleBuyer.IsValid())
	assert.True(t, RoleSeller.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("owner").IsValid())

	assert.True(t, UserStatusPending.IsValid())
	assert.True(t, UserStatusActive.IsValid())
	assert.True(t, UserStatusBlocked.IsValid())
	assert.False(t, UserStatus("deleted").IsValid())
}
