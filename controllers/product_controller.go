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

func GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}
	utils.Success(c, "Products loaded", products)
}

type ProductCreateInput struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price" binding:"gte=0"`
	FoodType  string  `json:"food_type"`
	Thumbnail string  `json:"thumbnail"`
	Quantity  int     `json:"quantity" binding:"gte=0"`
	MinStock  *int    `json:"min_stock"`
	Notes     string  `json:"notes"`
}

func CreateProduct(c *gin.Context) {
	var in ProductCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	minStock := models.DefaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := models.Product{
		Name:      in.Name,
		Category:  in.Category,
		Unit:      unit,
		Price:     in.Price,
		FoodType:  in.FoodType,
		Thumbnail: in.Thumbnail,
		Quantity:  in.Quantity,
		MinStock:  minStock,
		Notes:     in.Notes,
		Status:    models.DeriveStatus(in.Quantity, minStock),
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

type ProductUpdateInput struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Unit      *string  `json:"unit"`
	Price     *float64 `json:"price"`
	FoodType  *string  `json:"food_type"`
	Thumbnail *string  `json:"thumbnail"`
	MinStock  *int     `json:"min_stock"`
	Notes     *string  `json:"notes"`
}

// UpdateProduct edits catalog metadata. Quantity is deliberately not
// editable here; it only moves through the ledger endpoints.
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var in ProductUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Unit != nil {
		updates["unit"] = *in.Unit
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.FoodType != nil {
		updates["food_type"] = *in.FoodType
	}
	if in.Thumbnail != nil {
		updates["thumbnail"] = *in.Thumbnail
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.MinStock != nil {
		// threshold change can flip the derived status
		updates["min_stock"] = *in.MinStock
		updates["status"] = models.DeriveStatus(product.Quantity, *in.MinStock)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product", "error": err.Error()})
		return
	}

	if err := config.DB.First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reload product", "error": err.Error()})
		return
	}
	utils.Success(c, "Product updated", product)
}

// AddQuantity is the ledger's ADD path: increments (or creates) a product
// by name and writes the audit row.
func AddQuantity(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var in service.AddStockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	product, err := stockSvc.AddStock(c.Request.Context(), actor, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	middlewares.StockMutations.WithLabelValues(string(models.StockAdd)).Inc()

	utils.Success(c, "Stock added", product)
}

func GetStockLogs(c *gin.Context) {
	var logs []models.StockLog
	if err := config.DB.
		Preload("Product").
		Preload("User").
		Order("created_at DESC").
		Limit(50).
		Find(&logs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load stock logs", err)
		return
	}
	utils.Success(c, "Stock logs loaded", logs)
}
