package models

import "gorm.io/gorm"

type KitchenStatus string

const (
	KitchenActive   KitchenStatus = "Active"
	KitchenInactive KitchenStatus = "Inactive"
)

type Kitchen struct {
	gorm.Model
	Name     string        `gorm:"size:180"     json:"name"`
	Location string        `gorm:"size:255"     json:"location"`
	Manager  string        `gorm:"size:180"     json:"manager"`
	Phone    string        `gorm:"size:20"      json:"phone"`
	Status   KitchenStatus `gorm:"size:12;default:Active" json:"status"`

	// Admin is the kitchen_admin who physically holds transferred stock.
	AdminID *uint `json:"admin_id"`
	Admin   *User `json:"admin"`

	// One billing admin per kitchen; the unique index turns a duplicate
	// assignment into a constraint violation surfaced as a conflict.
	BillingAdminID uint `gorm:"uniqueIndex" json:"billing_admin_id"`
	BillingAdmin   User `json:"billing_admin"`

	AssignedProducts []KitchenProduct `json:"assigned_products"`
}

// KitchenProduct is planning metadata only. The authoritative record of what
// the kitchen admin actually holds is UserInventory.
type KitchenProduct struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	KitchenID uint    `gorm:"uniqueIndex:idx_kitchen_product" json:"kitchen_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_kitchen_product" json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
}
