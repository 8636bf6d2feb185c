package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golgappe-admin/models"
	"golgappe-admin/utils"
)

// BillingService creates orders and walks them through their lifecycle.
// Creating a bill deducts every line from the stock ledger in the same
// transaction as the bill row itself.
type BillingService struct {
	db    *gorm.DB
	stock *StockService
	log   *zap.Logger

	// StrictStatus validates status changes against the forward-only
	// transition table. Off by default: the historical behavior lets callers
	// set any status from any status, and some still rely on that.
	StrictStatus bool
}

func NewBillingService(db *gorm.DB, stock *StockService, log *zap.Logger, strictStatus bool) *BillingService {
	return &BillingService{db: db, stock: stock, log: log, StrictStatus: strictStatus}
}

type BillItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

type CreateBillInput struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	KitchenID     uint                 `json:"kitchen_id" binding:"required"`
	Items         []BillItemInput      `json:"items" binding:"required,min=1,dive"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Status        models.BillStatus    `json:"status"`
}

// CreateBill generates a bill number, stores the bill and runs every item
// through the ledger. A line with insufficient catalog stock aborts the
// whole bill. Retries a couple of times when the timestamp-derived bill
// number collides.
func (s *BillingService) CreateBill(ctx context.Context, actor Actor, in CreateBillInput) (*models.Bill, error) {
	if in.PaymentMethod != "" && !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, in.PaymentMethod)
	}
	status := in.Status
	if status == "" {
		status = models.BillPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}

	var kitchen models.Kitchen
	if err := s.db.WithContext(ctx).First(&kitchen, in.KitchenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kitchen %d", ErrNotFound, in.KitchenID)
		}
		return nil, err
	}
	var holderID uint
	if kitchen.AdminID != nil {
		holderID = *kitchen.AdminID
	}

	var total float64
	for _, it := range in.Items {
		total += float64(it.Quantity) * it.Price
	}

	const maxRetries = 3
	var bill models.Bill
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		// Rebuild per attempt: a rolled-back create leaves stale IDs behind.
		items := make([]models.BillItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, models.BillItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}
		bill = models.Bill{
			BillNumber:    utils.GenBillNumber(time.Now()),
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			KitchenID:     kitchen.ID,
			Items:         items,
			TotalAmount:   total,
			Status:        status,
			PaymentMethod: in.PaymentMethod,
		}
		lastErr = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&bill).Error; err != nil {
				return err
			}
			for _, it := range bill.Items {
				if err := s.stock.DeductForOrder(tx, it.ProductID, it.Quantity, bill.BillNumber, holderID, actor.ID); err != nil {
					return err
				}
			}
			return nil
		})
		if lastErr == nil {
			break
		}
		if IsUniqueViolation(lastErr) {
			continue
		}
		return nil, lastErr
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: bill number collision", ErrConflict)
	}

	if err := s.db.WithContext(ctx).
		Preload("Kitchen").
		Preload("Items.Product").
		First(&bill, bill.ID).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

type UpdateBillInput struct {
	CustomerName  *string               `json:"customer_name"`
	CustomerPhone *string               `json:"customer_phone"`
	Status        *models.BillStatus    `json:"status"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
}

// UpdateBill applies partial updates. Status changes go through the state
// machine when StrictStatus is on; either way the target status must be a
// known one.
func (s *BillingService) UpdateBill(ctx context.Context, billID uint, in UpdateBillInput) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.WithContext(ctx).First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bill %d", ErrNotFound, billID)
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.CustomerName != nil {
		updates["customer_name"] = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		updates["customer_phone"] = *in.CustomerPhone
	}
	if in.PaymentMethod != nil {
		if !in.PaymentMethod.Valid() {
			return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, *in.PaymentMethod)
		}
		updates["payment_method"] = *in.PaymentMethod
	}
	if in.Status != nil {
		next := *in.Status
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
		}
		if s.StrictStatus && !bill.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: cannot move bill from %s to %s", ErrValidation, bill.Status, next)
		}
		updates["status"] = next
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.db.WithContext(ctx).Model(&bill).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Preload("Kitchen").
		Preload("Items.Product").
		First(&bill, bill.ID).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}
