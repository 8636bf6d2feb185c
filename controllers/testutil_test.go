package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"golgappe-admin/config"
	"golgappe-admin/models"
)

// setupTest points the global config.DB at an in-memory database and wires the
// service layer, so handlers can be called directly through a test context.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Otp{},
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

	config.DB = db
	Init(db, zap.NewNop(), false)
	return db
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
