package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"golgappe-admin/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.UserInventory{},
		&models.StockLog{},
		&models.TransferLog{},
		&models.Kitchen{},
		&models.KitchenProduct{},
		&models.Bill{},
		&models.BillItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) models.User {
	t.Helper()
	user := models.User{Email: email, Role: role, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, quantity, minStock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:     name,
		Category: "Snacks",
		Unit:     "pcs",
		Quantity: quantity,
		MinStock: minStock,
		Status:   models.DeriveStatus(quantity, minStock),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func newStockService(db *gorm.DB) *StockService {
	return NewStockService(db, zap.NewNop())
}
