package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golgappe-admin/models"
)

func TestResolveForElevatedSeesCatalog(t *testing.T) {
	db := testDB(t)
	svc := NewInventoryService(db)
	seedProduct(t, db, "Gol Gappe", 50, 10)
	seedProduct(t, db, "Samosa", 5, 10)

	rows, err := svc.ResolveFor(context.Background(), Actor{ID: 1, Role: models.RoleSuperAdmin})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]int{}
	for _, r := range rows {
		byName[r.Product.Name] = r.Quantity
	}
	assert.Equal(t, 50, byName["Gol Gappe"])
	assert.Equal(t, 5, byName["Samosa"])
}

func TestResolveForHolderSeesOwnRows(t *testing.T) {
	db := testDB(t)
	svc := NewInventoryService(db)
	holder := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	other := seedUser(t, db, "other@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)
	require.NoError(t, db.Create(&models.UserInventory{UserID: holder.ID, ProductID: product.ID, Quantity: 20}).Error)
	require.NoError(t, db.Create(&models.UserInventory{UserID: other.ID, ProductID: product.ID, Quantity: 7}).Error)

	rows, err := svc.ResolveFor(context.Background(), Actor{ID: holder.ID, Role: holder.Role})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20, rows[0].Quantity)
	assert.Equal(t, holder.ID, rows[0].UserID)
}

func TestResolveForDropsDeletedProducts(t *testing.T) {
	db := testDB(t)
	svc := NewInventoryService(db)
	holder := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	kept := seedProduct(t, db, "Gol Gappe", 50, 10)
	gone := seedProduct(t, db, "Old Dish", 10, 10)
	require.NoError(t, db.Create(&models.UserInventory{UserID: holder.ID, ProductID: kept.ID, Quantity: 3}).Error)
	require.NoError(t, db.Create(&models.UserInventory{UserID: holder.ID, ProductID: gone.ID, Quantity: 4}).Error)
	require.NoError(t, db.Delete(&gone).Error)

	rows, err := svc.ResolveFor(context.Background(), Actor{ID: holder.ID, Role: holder.Role})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gol Gappe", rows[0].Product.Name)
}

func TestResolveForBillingAdminUsesKitchenHolder(t *testing.T) {
	db := testDB(t)
	svc := NewInventoryService(db)
	billingAdmin := seedUser(t, db, "billing@golgappe.local", models.RoleBillingAdmin)
	kitchenAdmin := seedUser(t, db, "kitchen@golgappe.local", models.RoleKitchenAdmin)
	product := seedProduct(t, db, "Gol Gappe", 50, 10)
	seedKitchen(t, db, &kitchenAdmin.ID, billingAdmin.ID)
	require.NoError(t, db.Create(&models.UserInventory{UserID: kitchenAdmin.ID, ProductID: product.ID, Quantity: 9}).Error)

	rows, err := svc.ResolveFor(context.Background(), Actor{ID: billingAdmin.ID, Role: billingAdmin.Role})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 9, rows[0].Quantity)
	assert.Equal(t, kitchenAdmin.ID, rows[0].UserID)
}

func TestResolveForBillingAdminWithoutKitchen(t *testing.T) {
	db := testDB(t)
	svc := NewInventoryService(db)
	billingAdmin := seedUser(t, db, "billing@golgappe.local", models.RoleBillingAdmin)

	rows, err := svc.ResolveFor(context.Background(), Actor{ID: billingAdmin.ID, Role: billingAdmin.Role})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
