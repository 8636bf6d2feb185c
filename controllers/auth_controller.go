package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"golgappe-admin/config"
	"golgappe-admin/models"
	"golgappe-admin/service"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = true", in.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login_at", now)

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type SendOtpInput struct {
	Mobile string `json:"mobile" binding:"required"`
}

func SendOtp(c *gin.Context) {
	var in SendOtpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("phone = ? AND is_active = true", in.Mobile).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No account for this mobile number"})
		return
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	otp := models.Otp{
		Mobile:    in.Mobile,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	if err := config.DB.Create(&otp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create OTP"})
		return
	}

	// No SMS gateway wired up; the code lands in the logs for now.
	// TODO: plug in the SMS provider once the business picks one.
	config.Logger().Info("otp issued", zap.String("mobile", in.Mobile), zap.String("code", code))

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

type OtpLoginInput struct {
	Mobile string `json:"mobile" binding:"required"`
	Otp    string `json:"otp" binding:"required"`
}

func OtpLogin(c *gin.Context) {
	var in OtpLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile and OTP are required"})
		return
	}

	var otp models.Otp
	if err := config.DB.Where("mobile = ?", in.Mobile).Order("created_at DESC").First(&otp).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid OTP"})
		return
	}
	if otp.Code != in.Otp || otp.Expired(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired OTP"})
		return
	}

	var user models.User
	if err := config.DB.Where("phone = ? AND is_active = true", in.Mobile).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No account for this mobile number"})
		return
	}

	config.DB.Where("mobile = ?", in.Mobile).Delete(&models.Otp{})

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type RegisterInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
}

// Register creates an account. Only elevated roles may do this.
func Register(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if !actor.Role.Elevated() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only super admins can create new users"})
		return
	}

	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required", "error": err.Error()})
		return
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown role"})
		return
	}

	var exists models.User
	if err := config.DB.Where("email = ?", in.Email).First(&exists).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if service.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func Profile(c *gin.Context) {
	uid, _ := c.Get("user_id")
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	utils.Success(c, "Profile loaded", user)
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	uid, _ := c.Get("user_id")

	var in ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid current password"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to change password", "error": err.Error()})
		return
	}

	utils.Success(c, "Password updated successfully", nil)
}

// GetAccounts lists every account below super admin.
func GetAccounts(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role <> ?", models.RoleSuperAdmin).
		Order("created_at DESC").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load users", err)
		return
	}
	utils.Success(c, "Users loaded", users)
}
