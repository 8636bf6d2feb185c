package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golgappe-admin/models"
)

func TestAddStockCreatesProduct(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	actor := Actor{ID: 1, Role: models.RoleSuperAdmin}

	product, err := svc.AddStock(context.Background(), actor, AddStockInput{
		ProductName: "Gol Gappe",
		Category:    "Snacks",
		Quantity:    50,
		Unit:        "plate",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, product.Quantity)
	assert.Equal(t, models.StatusInStock, product.Status)
	assert.Equal(t, models.DefaultMinStock, product.MinStock)

	var logs []models.StockLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.StockAdd, logs[0].Type)
	assert.Equal(t, 0, logs[0].PreviousQuantity)
	assert.Equal(t, 50, logs[0].NewQuantity)
	assert.Equal(t, logs[0].NewQuantity, logs[0].PreviousQuantity+logs[0].Quantity)
}

func TestAddStockIncrementsExisting(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	seedProduct(t, db, "Masala Chai", 5, 10)

	product, err := svc.AddStock(context.Background(), Actor{ID: 1, Role: models.RoleAdmin}, AddStockInput{
		ProductName: "Masala Chai",
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, product.Quantity)
	assert.Equal(t, models.StatusLowStock, product.Status)

	var log models.StockLog
	require.NoError(t, db.Last(&log).Error)
	assert.Equal(t, 5, log.PreviousQuantity)
	assert.Equal(t, 8, log.NewQuantity)
}

func TestAddStockStatusCrossesThreshold(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	seedProduct(t, db, "Paneer", 8, 10)

	product, err := svc.AddStock(context.Background(), Actor{ID: 1, Role: models.RoleAdmin}, AddStockInput{
		ProductName: "Paneer",
		Quantity:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, 28, product.Quantity)
	assert.Equal(t, models.StatusInStock, product.Status)
}

func TestAddStockRejectsNonPositiveQuantity(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)

	for _, qty := range []int{0, -5} {
		_, err := svc.AddStock(context.Background(), Actor{ID: 1, Role: models.RoleAdmin}, AddStockInput{
			ProductName: "Gol Gappe",
			Quantity:    qty,
		})
		assert.ErrorIs(t, err, ErrValidation)
	}

	var cnt int64
	db.Model(&models.Product{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestTransferFromCatalogPool(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	admin := seedUser(t, db, "boss@golgappe.local", models.RoleSuperAdmin)
	holder := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)

	entry, err := svc.Transfer(context.Background(), Actor{ID: admin.ID, Role: admin.Role}, TransferInput{
		ToUserID:  holder.ID,
		ProductID: product.ID,
		Quantity:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(0), entry.FromUserID)
	assert.Equal(t, holder.ID, entry.ToUserID)

	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 30, after.Quantity)
	assert.Equal(t, models.StatusInStock, after.Status)

	var inv models.UserInventory
	require.NoError(t, db.Where("user_id = ? AND product_id = ?", holder.ID, product.ID).First(&inv).Error)
	assert.Equal(t, 20, inv.Quantity)

	// quantity is conserved across the two sides
	assert.Equal(t, 50, after.Quantity+inv.Quantity)

	var log models.StockLog
	require.NoError(t, db.Where("type = ?", models.StockTransfer).First(&log).Error)
	assert.Equal(t, 50, log.PreviousQuantity)
	assert.Equal(t, 30, log.NewQuantity)
}

func TestTransferFromOwnInventory(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	from := seedUser(t, db, "from@golgappe.local", models.RoleKitchenAdmin)
	to := seedUser(t, db, "to@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Samosa", 100, 10)
	require.NoError(t, db.Create(&models.UserInventory{
		UserID: from.ID, ProductID: product.ID, Quantity: 30,
	}).Error)

	entry, err := svc.Transfer(context.Background(), Actor{ID: from.ID, Role: from.Role}, TransferInput{
		ToUserID:  to.ID,
		ProductID: product.ID,
		Quantity:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, from.ID, entry.FromUserID)

	// catalog untouched, only holder rows move
	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 100, after.Quantity)

	var src, dst models.UserInventory
	require.NoError(t, db.Where("user_id = ?", from.ID).First(&src).Error)
	require.NoError(t, db.Where("user_id = ?", to.ID).First(&dst).Error)
	assert.Equal(t, 18, src.Quantity)
	assert.Equal(t, 12, dst.Quantity)
	assert.Equal(t, 30, src.Quantity+dst.Quantity)
}

func TestTransferInsufficientStockLeavesStateUntouched(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	from := seedUser(t, db, "from@golgappe.local", models.RoleKitchenAdmin)
	to := seedUser(t, db, "to@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Samosa", 100, 10)
	require.NoError(t, db.Create(&models.UserInventory{
		UserID: from.ID, ProductID: product.ID, Quantity: 10,
	}).Error)

	_, err := svc.Transfer(context.Background(), Actor{ID: from.ID, Role: from.Role}, TransferInput{
		ToUserID:  to.ID,
		ProductID: product.ID,
		Quantity:  100,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	var src models.UserInventory
	require.NoError(t, db.Where("user_id = ?", from.ID).First(&src).Error)
	assert.Equal(t, 10, src.Quantity)

	var cnt int64
	db.Model(&models.UserInventory{}).Where("user_id = ?", to.ID).Count(&cnt)
	assert.Zero(t, cnt)
	db.Model(&models.TransferLog{}).Count(&cnt)
	assert.Zero(t, cnt)
	db.Model(&models.StockLog{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestTransferRecipientMustHoldStockRole(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	admin := seedUser(t, db, "boss@golgappe.local", models.RoleSuperAdmin)
	plain := seedUser(t, db, "plain@golgappe.local", models.RoleUser)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)

	_, err := svc.Transfer(context.Background(), Actor{ID: admin.ID, Role: admin.Role}, TransferInput{
		ToUserID:  plain.ID,
		ProductID: product.ID,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransferRecipientNotFound(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)

	_, err := svc.Transfer(context.Background(), Actor{ID: 1, Role: models.RoleSuperAdmin}, TransferInput{
		ToUserID:  999,
		ProductID: product.ID,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransferKeepsSingleInventoryRowPerPair(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	admin := seedUser(t, db, "boss@golgappe.local", models.RoleAdmin)
	holder := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)

	actor := Actor{ID: admin.ID, Role: admin.Role}
	for i := 0; i < 3; i++ {
		_, err := svc.Transfer(context.Background(), actor, TransferInput{
			ToUserID:  holder.ID,
			ProductID: product.ID,
			Quantity:  5,
		})
		require.NoError(t, err)
	}

	var rows []models.UserInventory
	require.NoError(t, db.Where("user_id = ? AND product_id = ?", holder.ID, product.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 15, rows[0].Quantity)
}

func TestDeductForOrderBestEffortHolderDebit(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)
	holder := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)
	require.NoError(t, db.Create(&models.UserInventory{
		UserID: holder.ID, ProductID: product.ID, Quantity: 2,
	}).Error)

	// holder has less than the order; catalog is debited, holder is skipped
	err := svc.DeductForOrder(db, product.ID, 5, "BILL123", holder.ID, 1)
	require.NoError(t, err)

	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 45, after.Quantity)

	var inv models.UserInventory
	require.NoError(t, db.Where("user_id = ?", holder.ID).First(&inv).Error)
	assert.Equal(t, 2, inv.Quantity)
}

func TestDeductForOrderMissingProductIsSkipped(t *testing.T) {
	db := testDB(t)
	svc := newStockService(db)

	err := svc.DeductForOrder(db, 999, 5, "BILL123", 0, 1)
	require.NoError(t, err)

	var cnt int64
	db.Model(&models.StockLog{}).Count(&cnt)
	assert.Zero(t, cnt)
}
