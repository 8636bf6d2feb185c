package models

import "gorm.io/gorm"

type BillStatus string

const (
	BillPending           BillStatus = "Pending"
	BillPaid              BillStatus = "Paid"
	BillAssignedToKitchen BillStatus = "Assigned_to_Kitchen"
	BillProcessing        BillStatus = "Processing"
	BillReady             BillStatus = "Ready"
	BillCompleted         BillStatus = "Completed"
	BillCancelled         BillStatus = "Cancelled"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillPending, BillPaid, BillAssignedToKitchen, BillProcessing,
		BillReady, BillCompleted, BillCancelled:
		return true
	}
	return false
}

func (s BillStatus) Terminal() bool {
	return s == BillCompleted || s == BillCancelled
}

// billFlow is the forward-only lifecycle. Cancelled is handled separately in
// CanTransitionTo since it is reachable from every non-terminal state.
var billFlow = map[BillStatus][]BillStatus{
	BillPending:           {BillPaid, BillAssignedToKitchen},
	BillPaid:              {BillAssignedToKitchen, BillProcessing},
	BillAssignedToKitchen: {BillProcessing},
	BillProcessing:        {BillReady},
	BillReady:             {BillCompleted},
}

// CanTransitionTo validates a strict status change. Callers running in the
// historical permissive mode skip this check entirely.
func (s BillStatus) CanTransitionTo(next BillStatus) bool {
	if s == next {
		return true
	}
	if next == BillCancelled {
		return !s.Terminal()
	}
	for _, n := range billFlow[s] {
		if n == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentOnline PaymentMethod = "Online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentOnline:
		return true
	}
	return false
}

type Bill struct {
	gorm.Model
	BillNumber    string        `gorm:"uniqueIndex;size:40" json:"bill_number"`
	CustomerName  string        `gorm:"size:180" json:"customer_name"`
	CustomerPhone string        `gorm:"size:20"  json:"customer_phone"`
	KitchenID     uint          `gorm:"index"    json:"kitchen_id"`
	Kitchen       Kitchen       `json:"kitchen"`
	Items         []BillItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BillStatus    `gorm:"size:30;index;default:Pending" json:"status"`
	PaymentMethod PaymentMethod `gorm:"size:10" json:"payment_method"`
}

type BillItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BillID    uint    `gorm:"index"      json:"bill_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
