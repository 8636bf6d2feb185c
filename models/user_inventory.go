package models

import "time"

// UserInventory tracks stock physically held by a user (typically a kitchen
// admin), separate from the undistributed catalog pool. One row per
// (user, product) pair; the unique index keeps credits from duplicating rows.
type UserInventory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product" json:"user_id"`
	User      User      `json:"user"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
