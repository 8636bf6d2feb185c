package routes

import (
	"golgappe-admin/controllers"
	"golgappe-admin/middlewares"
	"golgappe-admin/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/send-otp", controllers.SendOtp)
			auth.POST("/otp-login", controllers.OtpLogin)

			authed := auth.Group("/", middlewares.AuthMiddleware())
			{
				authed.POST("/register", controllers.Register)
				authed.GET("/profile", controllers.Profile)
				authed.POST("/change-password", controllers.ChangePassword)
				authed.GET("/users", controllers.GetAccounts)
				authed.DELETE("/users/:id", controllers.DeleteUser)
			}
		}

		users := api.Group("/users", middlewares.AuthMiddleware())
		{
			users.GET("/", controllers.GetAllUsers)
			users.GET("/admins", controllers.GetAdmins)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		products := api.Group("/products", middlewares.AuthMiddleware())
		{
			products.GET("/", controllers.GetAllProducts)
			products.POST("/", controllers.CreateProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.POST("/add-quantity", controllers.AddQuantity)
			products.POST("/transfer", controllers.TransferStock)
			products.GET("/stock-logs", controllers.GetStockLogs)
		}

		inventory := api.Group("/inventory", middlewares.AuthMiddleware())
		{
			inventory.GET("/", controllers.GetMyInventory)
		}

		kitchens := api.Group("/kitchens", middlewares.AuthMiddleware())
		{
			kitchens.GET("/", controllers.GetAllKitchens)
			kitchens.POST("/", controllers.CreateKitchen)
			kitchens.PUT("/:id", controllers.UpdateKitchen)
			kitchens.POST("/assign-product", controllers.AssignProduct)
			kitchens.DELETE("/:id", controllers.DeleteKitchen)
		}

		billing := api.Group("/billing", middlewares.AuthMiddleware())
		{
			billing.GET("/", controllers.GetAllBills)
			billing.POST("/", controllers.CreateBill)
			billing.GET("/:id", controllers.GetBillByID)
			billing.PUT("/:id", controllers.UpdateBill)
			billing.DELETE("/:id", controllers.DeleteBill)
		}

		billingAdmin := api.Group("/billing-admin",
			middlewares.AuthMiddleware(),
			middlewares.RequireRole(models.RoleBillingAdmin, models.RoleSuperAdmin, models.RoleAdmin),
		)
		{
			billingAdmin.GET("/my-kitchen", controllers.GetMyKitchen)
			billingAdmin.GET("/my-kitchen/orders", controllers.GetMyKitchenOrders)
			billingAdmin.GET("/my-kitchen/inventory", controllers.GetMyKitchenInventory)
		}
	}
}
