package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"golgappe-admin/models"
)

// StockService owns every mutation of catalog and holder quantities. All
// multi-row mutations run inside a single transaction and quantities only
// change through conditional atomic updates, so a shortfall can never drive
// a quantity negative.
type StockService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStockService(db *gorm.DB, log *zap.Logger) *StockService {
	return &StockService{db: db, log: log}
}

type AddStockInput struct {
	ProductName string `json:"productName" binding:"required"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Notes       string `json:"notes"`
}

// AddStock increments the catalog pool for a product looked up by name,
// creating the product on first sight. Exactly one ADD audit row is written
// with the quantities captured around the mutation.
func (s *StockService) AddStock(ctx context.Context, actor Actor, in AddStockInput) (*models.Product, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	}

	var product models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", in.ProductName).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			unit := in.Unit
			if unit == "" {
				unit = "pcs"
			}
			product = models.Product{
				Name:     in.ProductName,
				Category: in.Category,
				Unit:     unit,
				Quantity: in.Quantity,
				MinStock: models.DefaultMinStock,
				Status:   models.DeriveStatus(in.Quantity, models.DefaultMinStock),
				Notes:    in.Notes,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			return tx.Create(&models.StockLog{
				ProductID:        product.ID,
				Type:             models.StockAdd,
				Quantity:         in.Quantity,
				PreviousQuantity: 0,
				NewQuantity:      product.Quantity,
				Notes:            in.Notes,
				UserID:           actor.ID,
			}).Error
		}
		if err != nil {
			return err
		}

		prev := product.Quantity
		if err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("quantity", gorm.Expr("quantity + ?", in.Quantity)).Error; err != nil {
			return err
		}
		product.Quantity = prev + in.Quantity
		product.Status = models.DeriveStatus(product.Quantity, product.MinStock)
		if err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("status", product.Status).Error; err != nil {
			return err
		}
		return tx.Create(&models.StockLog{
			ProductID:        product.ID,
			Type:             models.StockAdd,
			Quantity:         in.Quantity,
			PreviousQuantity: prev,
			NewQuantity:      product.Quantity,
			Notes:            in.Notes,
			UserID:           actor.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeductForOrder removes a bill line's quantity from the catalog and,
// best-effort, from the kitchen holder's inventory. It runs inside the
// caller's transaction so a failing line rolls back the whole bill.
//
// Two skips are deliberate policy, not accidents: a bill line referencing a
// product that no longer exists is logged and ignored, and a holder with no
// matching inventory row (or too little in it) is left untouched.
func (s *StockService) DeductForOrder(tx *gorm.DB, productID uint, quantity int, billNumber string, holderID, actorID uint) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	}

	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("deduction skipped, product missing",
				zap.Uint("product_id", productID),
				zap.String("bill_number", billNumber))
			return nil
		}
		return err
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", product.ID, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %q has %d, requested %d",
			ErrInsufficientStock, product.Name, product.Quantity, quantity)
	}

	newQty := product.Quantity - quantity
	if err := tx.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("status", models.DeriveStatus(newQty, product.MinStock)).Error; err != nil {
		return err
	}

	if holderID != 0 {
		res := tx.Model(&models.UserInventory{}).
			Where("user_id = ? AND product_id = ? AND quantity >= ?", holderID, product.ID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			s.log.Warn("holder inventory not debited",
				zap.Uint("holder_id", holderID),
				zap.Uint("product_id", product.ID),
				zap.String("bill_number", billNumber))
		}
	}

	return tx.Create(&models.StockLog{
		ProductID:        product.ID,
		Type:             models.StockRemove,
		Quantity:         quantity,
		PreviousQuantity: product.Quantity,
		NewQuantity:      newQty,
		Notes:            "Order " + billNumber,
		UserID:           actorID,
	}).Error
}

type TransferInput struct {
	ToUserID  uint   `json:"to_user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// Transfer moves stock to a kitchen admin's inventory. Elevated actors source
// the global catalog pool; everyone else sources their own holdings. Debit,
// credit, transfer log and audit log are one transaction.
func (s *StockService) Transfer(ctx context.Context, actor Actor, in TransferInput) (*models.TransferLog, error) {
	if in.ProductID == 0 {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	}

	var recipient models.User
	if err := s.db.WithContext(ctx).First(&recipient, in.ToUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipient user %d", ErrNotFound, in.ToUserID)
		}
		return nil, err
	}
	if !recipient.Role.CanHoldStock() {
		return nil, fmt.Errorf("%w: recipient must be a kitchen admin", ErrForbidden)
	}

	var entry models.TransferLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", ErrNotFound, in.ProductID)
			}
			return err
		}

		var prev, next int
		var fromID uint

		if actor.Role.Elevated() {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", product.ID, in.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", in.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: catalog has %d of %q, requested %d",
					ErrInsufficientStock, product.Quantity, product.Name, in.Quantity)
			}
			prev, next = product.Quantity, product.Quantity-in.Quantity
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("status", models.DeriveStatus(next, product.MinStock)).Error; err != nil {
				return err
			}
		} else {
			fromID = actor.ID
			var src models.UserInventory
			if err := tx.Where("user_id = ? AND product_id = ?", actor.ID, product.ID).
				First(&src).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: you hold no stock of %q", ErrInsufficientStock, product.Name)
				}
				return err
			}
			res := tx.Model(&models.UserInventory{}).
				Where("id = ? AND quantity >= ?", src.ID, in.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", in.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: you hold %d of %q, requested %d",
					ErrInsufficientStock, src.Quantity, product.Name, in.Quantity)
			}
			prev, next = src.Quantity, src.Quantity-in.Quantity
		}

		// Credit the destination; the (user, product) unique index plus the
		// upsert keeps this at one row per pair.
		dest := models.UserInventory{
			UserID:    in.ToUserID,
			ProductID: product.ID,
			Quantity:  in.Quantity,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", in.Quantity),
			}),
		}).Create(&dest).Error; err != nil {
			return err
		}

		entry = models.TransferLog{
			FromUserID: fromID,
			ToUserID:   in.ToUserID,
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			Notes:      in.Notes,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Create(&models.StockLog{
			ProductID:        product.ID,
			Type:             models.StockTransfer,
			Quantity:         in.Quantity,
			PreviousQuantity: prev,
			NewQuantity:      next,
			Notes:            in.Notes,
			UserID:           actor.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
