package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Niksiiii/BuConnect/configs"
	"github.com/Niksiiii/BuConnect/controllers"
	"github.com/Niksiiii/BuConnect/entity"
	"github.com/Niksiiii/BuConnect/middlewares"
	"github.com/Niksiiii/BuConnect/repository"
	"github.com/Niksiiii/BuConnect/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *services.AuthService {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// Services
	ledger := services.NewLedger()
	orderSvc := services.NewOrderService(ledger, orderRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.MockLatency)
	cartSvc := services.NewCartService(catalogRepo, orderSvc)
	laundrySvc := services.NewLaundryService(catalogRepo, orderSvc)
	deliverySvc := services.NewDeliveryService(orderSvc, deliveryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc, authSvc)
	laundryCtrl := controllers.NewLaundryController(laundrySvc, authSvc)
	studentCtrl := controllers.NewStudentOrderController(orderSvc)
	vendorCtrl := controllers.NewVendorOrderController(orderSvc, authSvc, catalogRepo)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	adminCtrl := controllers.NewAdminController(orderRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	student := string(entity.RoleStudent)
	foodVendor := string(entity.RoleFoodVendor)
	laundryVendor := string(entity.RoleLaundryVendor)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth())
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// Catalog (public)
	r.GET("/vendors", catalogCtrl.Vendors)
	r.GET("/vendors/:id", catalogCtrl.Vendor)
	r.GET("/vendors/:id/menu", catalogCtrl.Menu)
	r.GET("/laundry/items", catalogCtrl.LaundryItems)

	// Food cart + orders (student)
	u := r.Group("/", auth(student))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.DELETE("/cart/items/:id", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)
		u.POST("/orders", cartCtrl.PlaceOrder)

		u.GET("/laundry/cart", laundryCtrl.Get)
		u.POST("/laundry/cart/items", laundryCtrl.Add)
		u.DELETE("/laundry/cart/items/:id", laundryCtrl.Remove)
		u.DELETE("/laundry/cart", laundryCtrl.Clear)
		u.POST("/laundry/orders", laundryCtrl.PlaceOrder)

		u.GET("/orders", studentCtrl.List)
		u.POST("/orders/:id/verify", studentCtrl.Verify)
	}

	// Vendor queue (food + laundry vendors)
	v := r.Group("/vendor", auth(foodVendor, laundryVendor))
	{
		v.GET("/orders", vendorCtrl.List)
		v.PATCH("/orders/:id/accept", vendorCtrl.Accept)
		v.PATCH("/orders/:id/reject", vendorCtrl.Reject)
		v.PATCH("/orders/:id/prepare", vendorCtrl.StartPreparing)
		v.PATCH("/orders/:id/ready", vendorCtrl.MarkReady)
	}

	// Delivery volunteers are students
	d := r.Group("/delivery", auth(student))
	{
		d.GET("/orders", deliveryCtrl.Available)
		d.POST("/orders/:id/accept", deliveryCtrl.Accept)
		d.POST("/orders/:id/complete", deliveryCtrl.Complete)
		d.GET("/mine", deliveryCtrl.Mine)
		d.GET("/points", deliveryCtrl.Points)
	}

	// Thin admin layer over the durable mirror
	admin := r.Group("/admin", auth())
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.OrderList)
	}

	return authSvc
}
