package models

import "time"

type UserRole string

const (
	RoleSuperAdmin   UserRole = "super_admin"
	RoleAdmin        UserRole = "admin"
	RoleBillingAdmin UserRole = "billing_admin"
	RoleKitchenAdmin UserRole = "kitchen_admin"
	RoleUser         UserRole = "user"
)

// Elevated roles manage accounts and may source transfers from the catalog pool.
func (r UserRole) Elevated() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// CanHoldStock reports whether a user with this role is eligible to receive
// transferred stock into their own inventory.
func (r UserRole) CanHoldStock() bool {
	return r == RoleKitchenAdmin
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleBillingAdmin, RoleKitchenAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           uint       `gorm:"primaryKey"           json:"id"`
	Email        string     `gorm:"uniqueIndex;size:180" json:"email"`
	PasswordHash string     `gorm:"size:255"             json:"-"`
	Role         UserRole   `gorm:"size:30;index"        json:"role"`
	Phone        string     `gorm:"size:20"              json:"phone"`
	IsActive     bool       `gorm:"default:true"         json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
