package controllers

import (
	"net/http"

	"golgappe-admin/middlewares"
	"golgappe-admin/models"
	"golgappe-admin/service"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
)

// TransferStock moves stock from the catalog pool (elevated actors) or the
// caller's own holdings to a kitchen admin.
func TransferStock(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var in service.TransferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	entry, err := stockSvc.Transfer(c.Request.Context(), actor, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	middlewares.StockMutations.WithLabelValues(string(models.StockTransfer)).Inc()

	utils.Success(c, "Stock transferred", entry)
}

// GetMyInventory resolves the caller's view of inventory by role.
func GetMyInventory(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	rows, err := inventorySvc.ResolveFor(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, "Inventory loaded", rows)
}
