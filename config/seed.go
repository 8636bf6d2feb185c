package config

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"golgappe-admin/models"
)

// SeedSuperAdmin creates the initial super admin account when the users table
// has none, so a fresh deployment can log in and register the rest.
func SeedSuperAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&cnt)
	if cnt > 0 {
		return
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@golgappe.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&user).Error; err != nil {
		Logger().Warn("super admin seed failed", zap.Error(err))
		return
	}
	Logger().Info("seeded super admin", zap.String("email", email))
}
