package models

import "time"

// TransferLog records one stock movement between holders. FromUserID is zero
// when the source was the global catalog pool.
type TransferLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"index" json:"from_user_id"`
	ToUserID   uint      `gorm:"index" json:"to_user_id"`
	ToUser     User      `json:"to_user"`
	ProductID  uint      `gorm:"index" json:"product_id"`
	Product    Product   `json:"product"`
	Quantity   int       `json:"quantity"`
	Notes      string    `gorm:"size:255" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
