package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"golgappe-admin/models"
	"golgappe-admin/service"
)

var (
	stockSvc     *service.StockService
	billingSvc   *service.BillingService
	inventorySvc *service.InventoryService
)

// Init wires the service layer. Called once from main after the database
// connection is up.
func Init(db *gorm.DB, log *zap.Logger, strictBillStatus bool) {
	stockSvc = service.NewStockService(db, log)
	billingSvc = service.NewBillingService(db, stockSvc, log, strictBillStatus)
	inventorySvc = service.NewInventoryService(db)
}

func currentActor(c *gin.Context) (service.Actor, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return service.Actor{}, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return service.Actor{}, errors.New("user_id invalid")
	}
	r, _ := c.Get("role")
	role, _ := r.(models.UserRole)
	return service.Actor{ID: id, Role: role}, nil
}

// serviceError maps the core error taxonomy onto response codes: validation,
// insufficient stock and conflicts are client errors, everything unexpected
// is a 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong", "error": err.Error()})
	}
}
