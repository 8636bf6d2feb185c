package controllers

import (
	"errors"
	"net/http"

	"golgappe-admin/config"
	"golgappe-admin/models"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func myKitchen(c *gin.Context) (*models.Kitchen, error) {
	uid, _ := c.Get("user_id")
	var kitchen models.Kitchen
	err := config.DB.
		Preload("Admin").
		Preload("AssignedProducts.Product").
		Where("billing_admin_id = ?", uid).
		First(&kitchen).Error
	if err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func GetMyKitchen(c *gin.Context) {
	kitchen, err := myKitchen(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "message": "No kitchen assigned to you"})
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load kitchen", err)
		return
	}
	utils.Success(c, "Kitchen loaded", kitchen)
}

func GetMyKitchenOrders(c *gin.Context) {
	kitchen, err := myKitchen(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Success(c, "No kitchen assigned", []models.Bill{})
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load kitchen", err)
		return
	}

	var orders []models.Bill
	if err := config.DB.
		Preload("Items.Product").
		Where("kitchen_id = ?", kitchen.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load orders", err)
		return
	}
	utils.Success(c, "Orders loaded", orders)
}

// GetMyKitchenInventory reshapes the kitchen's planning rows into inventory
// form. Rows pointing at deleted products are dropped.
func GetMyKitchenInventory(c *gin.Context) {
	kitchen, err := myKitchen(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Success(c, "No kitchen assigned", []gin.H{})
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load kitchen", err)
		return
	}

	uid, _ := c.Get("user_id")
	inventory := make([]gin.H, 0, len(kitchen.AssignedProducts))
	for _, ap := range kitchen.AssignedProducts {
		if ap.Product.ID == 0 {
			continue
		}
		inventory = append(inventory, gin.H{
			"id":       ap.ID,
			"product":  ap.Product,
			"quantity": ap.Quantity,
			"user_id":  uid,
		})
	}
	utils.Success(c, "Inventory loaded", inventory)
}
