package controllers

import (
	"net/http"
	"strconv"

	"golgappe-admin/config"
	"golgappe-admin/middlewares"
	"golgappe-admin/models"
	"golgappe-admin/service"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
)

func GetAllBills(c *gin.Context) {
	var bills []models.Bill
	if err := config.DB.
		Preload("Kitchen").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&bills).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load bills", err)
		return
	}
	utils.Success(c, "Bills loaded", bills)
}

// CreateBill stores the order and deducts every line from the stock ledger
// in one transaction.
func CreateBill(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var in service.CreateBillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	bill, err := billingSvc.CreateBill(c.Request.Context(), actor, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	middlewares.StockMutations.WithLabelValues(string(models.StockRemove)).Add(float64(len(bill.Items)))

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": bill})
}

func GetBillByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var bill models.Bill
	if err := config.DB.
		Preload("Kitchen").
		Preload("Items.Product").
		First(&bill, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bill not found"})
		return
	}
	utils.Success(c, "Bill loaded", bill)
}

func UpdateBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var in service.UpdateBillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	bill, err := billingSvc.UpdateBill(c.Request.Context(), uint(id), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, "Bill updated", bill)
}

func DeleteBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var bill models.Bill
	if err := config.DB.First(&bill, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bill not found"})
		return
	}
	if err := config.DB.Delete(&bill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete bill", "error": err.Error()})
		return
	}

	utils.Success(c, "Bill deleted successfully", nil)
}
