package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/controllers"
	"github.com/adrianhartanto/cafe-order-app/middlewares"
	"github.com/adrianhartanto/cafe-order-app/services"
)

func SetupRouter(db *gorm.DB, gateway services.PaymentGateway) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	tableSvc := services.NewTableService(db)
	menuSvc := services.NewMenuService(db)
	cartSvc := services.NewCartService(db)
	orderSvc := services.NewOrderService(db)
	paymentSvc := services.NewPaymentService(db, gateway)
	userSvc := services.NewUserService(db)

	tableCtrl := controllers.NewTableController(tableSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	userCtrl := controllers.NewUserController(userSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES (customer)
	// ----------------------------------------------------------------

	// Login/register behind the strict limiter
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// QR scan entry point
	r.GET("/scan/:qr_code", tableCtrl.ScanTable)

	// Catalog
	r.GET("/menus", menuCtrl.GetAvailableMenus)
	r.GET("/menus/search", menuCtrl.SearchMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/categories", menuCtrl.GetAllCategories)
	r.GET("/categories/:category_id/menus", menuCtrl.GetMenusByCategory)

	// Cart, scoped to the scanned table
	r.GET("/tables/:table_id/cart", cartCtrl.GetCart)
	r.GET("/tables/:table_id/cart/total", cartCtrl.GetCartTotal)
	r.POST("/tables/:table_id/cart/items", cartCtrl.AddItem)
	r.PUT("/tables/:table_id/cart/items/:item_id", cartCtrl.UpdateItemQuantity)
	r.DELETE("/tables/:table_id/cart/items/:item_id", cartCtrl.RemoveItem)
	r.DELETE("/tables/:table_id/cart", cartCtrl.ClearCart)

	// Orders and payments
	r.POST("/tables/:table_id/orders", orderCtrl.CreateOrder)
	r.GET("/tables/:table_id/orders", orderCtrl.GetActiveOrdersByTable)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	r.POST("/payments/card", paymentCtrl.ProcessCardPayment)
	r.POST("/payments/cash", paymentCtrl.ProcessCashPayment)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())

	admin.GET("/profile", userCtrl.GetProfile)
	admin.GET("/users", userCtrl.GetAllUsers)

	// TABLES
	admin.GET("/tables", tableCtrl.GetAllTables)
	admin.POST("/tables", tableCtrl.CreateTable)
	admin.GET("/tables/stats", tableCtrl.GetTableStats)
	admin.GET("/tables/:table_id", tableCtrl.GetTableByID)
	admin.PUT("/tables/:table_id", tableCtrl.UpdateTable)
	admin.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
	admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	admin.POST("/tables/:table_id/qrcode", tableCtrl.RegenerateQRCode)
	admin.GET("/tables/:table_id/qrcode", tableCtrl.GetTableQRCodeImage)

	// MENUS
	admin.GET("/menus", menuCtrl.GetAllMenus)
	admin.POST("/menus", menuCtrl.CreateMenu)
	admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	admin.PATCH("/menus/:menu_id/availability", menuCtrl.UpdateMenuAvailability)
	admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// CATEGORIES
	admin.POST("/categories", menuCtrl.CreateCategory)
	admin.DELETE("/categories/:category_id", menuCtrl.DeleteCategory)

	// ORDERS
	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.GET("/orders/stats", orderCtrl.GetTodayStats)
	admin.GET("/orders/status-counts", orderCtrl.GetStatusCounts)
	admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	// PAYMENTS
	admin.GET("/payments/stats", paymentCtrl.GetTodayStats)
	admin.GET("/payments/:payment_id", paymentCtrl.GetPayment)
	admin.POST("/payments/:payment_id/refund", paymentCtrl.RefundPayment)
	admin.GET("/orders/:order_id/payment", paymentCtrl.GetPaymentByOrder)

	return r
}
