package main

import (
	"os"

	"golgappe-admin/config"
	"golgappe-admin/controllers"
	"golgappe-admin/middlewares"
	"golgappe-admin/models"
	"golgappe-admin/routes"
	"golgappe-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; hosted environments set real env vars
	_ = godotenv.Load()

	log := config.Logger()
	defer log.Sync()

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Otp{},
		&models.Product{},
		&models.UserInventory{},
		&models.StockLog{},
		&models.TransferLog{},
		&models.Kitchen{},
		&models.KitchenProduct{},
		&models.Bill{},
		&models.BillItem{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	config.SeedSuperAdmin()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	strictStatus := os.Getenv("STRICT_BILL_STATUS") == "true"
	controllers.Init(config.DB, log, strictStatus)

	r := gin.Default()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Metrics())
	routes.SetupRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Gol Gol Gappe Admin API 🚀",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"products": "/api/products",
				"kitchens": "/api/kitchens",
				"billing":  "/api/billing",
			},
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("starting server", zap.String("port", port), zap.Bool("strict_bill_status", strictStatus))
	_ = r.Run(":" + port)
}
