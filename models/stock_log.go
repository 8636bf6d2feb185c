package models

import "time"

type StockLogType string

const (
	StockAdd      StockLogType = "ADD"
	StockRemove   StockLogType = "REMOVE"
	StockTransfer StockLogType = "TRANSFER"
)

// StockLog is the append-only audit trail of catalog quantity mutations.
// Rows are only ever created; nothing in the codebase updates or deletes them.
type StockLog struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	ProductID        uint         `gorm:"index"      json:"product_id"`
	Product          Product      `json:"product"`
	Type             StockLogType `gorm:"size:10;index" json:"type"`
	Quantity         int          `json:"quantity"`
	PreviousQuantity int          `json:"previous_quantity"`
	NewQuantity      int          `json:"new_quantity"`
	Notes            string       `gorm:"size:255" json:"notes"`
	UserID           uint         `json:"user_id"`
	User             User         `json:"user"`
	CreatedAt        time.Time    `json:"created_at"`
}
