package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alisherkhudoyberdiev/qrplatform/configs"
	"github.com/alisherkhudoyberdiev/qrplatform/controllers"
	"github.com/alisherkhudoyberdiev/qrplatform/middlewares"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/session"
	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := session.NewStore(cfg.SessionSecret, cfg.Production())

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, restRepo)
	restSvc := services.NewRestaurantService(restRepo, adminRepo)
	menuSvc := services.NewMenuService(catRepo, itemRepo, restRepo)
	orderSvc := services.NewOrderService(orderRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, store)
	catCtrl := controllers.NewCategoryController(menuSvc)
	itemCtrl := controllers.NewMenuItemController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	publicCtrl := controllers.NewPublicController(menuSvc, orderSvc, restSvc)
	saCtrl := controllers.NewSuperAdminController(restSvc, store)
	qrCtrl := controllers.NewQRController(restRepo, cfg.PublicBaseURL, cfg.RootDomain)

	// Rewrite target for subdomain tenants.
	r.GET("/r/:subdomain/:locale", publicCtrl.TenantMenu)

	api := r.Group("/api")

	// Public customer surface
	api.GET("/restaurants/:id/menu", publicCtrl.Menu)
	api.GET("/restaurants/:id/menu/items/:itemId", publicCtrl.MenuItem)
	api.POST("/orders", publicCtrl.PlaceOrder)
	api.GET("/orders/:id/status", publicCtrl.OrderStatus)

	// Admin console (session-backed)
	admin := api.Group("/admin", middlewares.LoadSession(store))
	{
		admin.POST("/login", authCtrl.Login)
		admin.POST("/logout", authCtrl.Logout)
		admin.GET("/me", middlewares.RequireAdmin(), authCtrl.Me)
	}

	// Scoped operations need an effective restaurant.
	scoped := admin.Group("", middlewares.RequireScoped())
	{
		scoped.GET("/categories", catCtrl.List)
		scoped.POST("/categories", catCtrl.Create)
		scoped.PATCH("/categories/:id", catCtrl.Update)
		scoped.DELETE("/categories/:id", catCtrl.Delete)

		scoped.GET("/menu-items", itemCtrl.List)
		scoped.POST("/menu-items", itemCtrl.Create)
		scoped.PATCH("/menu-items/:id", itemCtrl.Update)
		scoped.DELETE("/menu-items/:id", itemCtrl.Delete)

		scoped.GET("/orders", orderCtrl.List)
		scoped.GET("/orders/board", orderCtrl.Board)
		scoped.PATCH("/orders/:id/status", orderCtrl.SetStatus)
		scoped.GET("/dashboard", orderCtrl.Dashboard)
		scoped.GET("/qr", qrCtrl.MenuQR)
	}

	// Platform operations, super-admin only.
	sa := admin.Group("/superadmin", middlewares.RequireSuperAdmin())
	{
		sa.GET("/restaurants", saCtrl.ListRestaurants)
		sa.POST("/restaurants", saCtrl.CreateRestaurant)
		sa.POST("/admins", saCtrl.CreateAdmin)
		sa.POST("/switch", saCtrl.Switch)
	}
}
