package controllers

import (
	"net/http"
	"strconv"

	"golgappe-admin/config"
	"golgappe-admin/models"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
)

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role = ?", models.RoleUser).
		Order("created_at DESC").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load users", err)
		return
	}
	utils.Success(c, "Users loaded", users)
}

func GetAdmins(c *gin.Context) {
	var admins []models.User
	if err := config.DB.
		Where("role IN ?", []models.UserRole{models.RoleAdmin, models.RoleBillingAdmin, models.RoleKitchenAdmin}).
		Order("created_at DESC").Find(&admins).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load admins", err)
		return
	}
	utils.Success(c, "Admins loaded", admins)
}

func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user", "error": err.Error()})
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}
