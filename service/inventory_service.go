package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"golgappe-admin/models"
)

type InventoryRow struct {
	ID       uint           `json:"id"`
	UserID   uint           `json:"user_id"`
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ResolveFor answers "what inventory does this actor see". Elevated roles see
// the whole catalog reinterpreted as inventory rows; a billing admin sees the
// holdings of their kitchen's admin; everyone else sees their own rows.
// Rows whose product has since been deleted are dropped, not errored.
func (s *InventoryService) ResolveFor(ctx context.Context, actor Actor) ([]InventoryRow, error) {
	db := s.db.WithContext(ctx)

	if actor.Role.Elevated() {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			return nil, err
		}
		rows := make([]InventoryRow, 0, len(products))
		for _, p := range products {
			rows = append(rows, InventoryRow{
				ID:       p.ID,
				UserID:   actor.ID,
				Product:  p,
				Quantity: p.Quantity,
			})
		}
		return rows, nil
	}

	holderID := actor.ID
	if actor.Role == models.RoleBillingAdmin {
		var kitchen models.Kitchen
		err := db.Where("billing_admin_id = ?", actor.ID).First(&kitchen).Error
		switch {
		case err == nil:
			if kitchen.AdminID != nil {
				holderID = *kitchen.AdminID
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no kitchen assigned, fall back to own rows
		default:
			return nil, err
		}
	}

	var inv []models.UserInventory
	if err := db.Preload("Product").Where("user_id = ?", holderID).Find(&inv).Error; err != nil {
		return nil, err
	}
	rows := make([]InventoryRow, 0, len(inv))
	for _, row := range inv {
		if row.Product.ID == 0 {
			continue
		}
		rows = append(rows, InventoryRow{
			ID:       row.ID,
			UserID:   row.UserID,
			Product:  row.Product,
			Quantity: row.Quantity,
		})
	}
	return rows, nil
}
