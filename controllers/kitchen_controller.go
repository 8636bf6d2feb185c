package controllers

import (
	"net/http"
	"strconv"

	"golgappe-admin/config"
	"golgappe-admin/models"
	"golgappe-admin/service"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

func GetAllKitchens(c *gin.Context) {
	var kitchens []models.Kitchen
	if err := config.DB.
		Preload("Admin").
		Preload("BillingAdmin").
		Preload("AssignedProducts.Product").
		Order("created_at DESC").
		Find(&kitchens).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load kitchens", err)
		return
	}
	utils.Success(c, "Kitchens loaded", kitchens)
}

type KitchenCreateInput struct {
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Manager        string `json:"manager" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	AdminID        *uint  `json:"admin_id"`
	BillingAdminID uint   `json:"billing_admin_id" binding:"required"`
}

func CreateKitchen(c *gin.Context) {
	var in KitchenCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var billingAdmin models.User
	if err := config.DB.First(&billingAdmin, in.BillingAdminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Billing admin not found"})
		return
	}

	// one kitchen per billing admin
	var cnt int64
	config.DB.Model(&models.Kitchen{}).Where("billing_admin_id = ?", in.BillingAdminID).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Billing admin is already assigned to a kitchen"})
		return
	}

	kitchen := models.Kitchen{
		Name:           in.Name,
		Location:       in.Location,
		Manager:        in.Manager,
		Phone:          in.Phone,
		Status:         models.KitchenActive,
		AdminID:        in.AdminID,
		BillingAdminID: in.BillingAdminID,
	}
	if err := config.DB.Create(&kitchen).Error; err != nil {
		if service.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Billing admin is already assigned to a kitchen"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create kitchen", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": kitchen})
}

type KitchenUpdateInput struct {
	Name     *string               `json:"name"`
	Location *string               `json:"location"`
	Manager  *string               `json:"manager"`
	Phone    *string               `json:"phone"`
	Status   *models.KitchenStatus `json:"status"`
	AdminID  *uint                 `json:"admin_id"`
}

func UpdateKitchen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var kitchen models.Kitchen
	if err := config.DB.First(&kitchen, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kitchen not found"})
		return
	}

	var in KitchenUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Manager != nil {
		updates["manager"] = *in.Manager
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.AdminID != nil {
		updates["admin_id"] = *in.AdminID
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if err := config.DB.Model(&kitchen).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update kitchen", "error": err.Error()})
		return
	}

	if err := config.DB.
		Preload("Admin").
		Preload("BillingAdmin").
		Preload("AssignedProducts.Product").
		First(&kitchen, kitchen.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reload kitchen", "error": err.Error()})
		return
	}
	utils.Success(c, "Kitchen updated", kitchen)
}

type AssignProductInput struct {
	KitchenID uint `json:"kitchen_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"gte=0"`
}

// AssignProduct records planning metadata on the kitchen. This does not move
// stock; transfers do that against UserInventory.
func AssignProduct(c *gin.Context) {
	var in AssignProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var kitchen models.Kitchen
	if err := config.DB.First(&kitchen, in.KitchenID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kitchen not found"})
		return
	}
	var product models.Product
	if err := config.DB.First(&product, in.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	row := models.KitchenProduct{
		KitchenID: in.KitchenID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kitchen_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": in.Quantity}),
	}).Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign product", "error": err.Error()})
		return
	}

	if err := config.DB.
		Preload("AssignedProducts.Product").
		First(&kitchen, kitchen.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reload kitchen", "error": err.Error()})
		return
	}
	utils.Success(c, "Product assigned to kitchen", kitchen)
}

func DeleteKitchen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var kitchen models.Kitchen
	if err := config.DB.First(&kitchen, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kitchen not found"})
		return
	}
	// hard delete: a soft-deleted row would keep holding the unique
	// billing_admin_id slot and block reassigning that admin
	if err := config.DB.Unscoped().Delete(&kitchen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete kitchen", "error": err.Error()})
		return
	}

	utils.Success(c, "Kitchen deleted successfully", nil)
}
