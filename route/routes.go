package route

import (
	"dinehub/auth"
	"dinehub/controller"
	"dinehub/notify"
	"dinehub/utils"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.Engine, hub *notify.Hub) {
	// Admin dashboard: superadmin and ceo only.
	adminGroup := router.Group("/admin")
	adminGroup.Use(utils.AdminMiddleware())
	{
		adminGroup.GET("/restaurant", controller.GetMyRestaurant)
		adminGroup.PUT("/restaurant", controller.UpdateMyRestaurant)
		adminGroup.PUT("/restaurants/:id/subscription", controller.ExtendSubscription)

		adminGroup.GET("/categories", controller.GetMyCategories)
		adminGroup.POST("/categories", controller.AddCategory)
		adminGroup.PUT("/categories/:id", controller.UpdateCategory)
		adminGroup.DELETE("/categories/:id", controller.DeleteCategory)

		adminGroup.GET("/menu-items", controller.GetMyMenuItems)
		adminGroup.POST("/menu-items", controller.AddMenuItem)
		adminGroup.POST("/menu-items/excel", controller.BulkAddMenuItems)
		adminGroup.PUT("/menu-items/:id", controller.UpdateMenuItem)
		adminGroup.DELETE("/menu-items/:id", controller.DeleteMenuItem)

		adminGroup.GET("/tables", controller.GetMyTables)
		adminGroup.POST("/tables", controller.AddTable)
		adminGroup.PUT("/tables/:id", controller.UpdateTable)
		adminGroup.POST("/tables/:id/rotate-qr", controller.RotateTableQR)
		adminGroup.DELETE("/tables/:id", controller.DeleteTable)

		adminGroup.GET("/users/pending", controller.GetPendingUsers)
		adminGroup.GET("/users/pending/count", controller.GetPendingUsersCount)
		adminGroup.PUT("/users/:id/approve", controller.ApproveUser)
		adminGroup.PUT("/users/:id/reject", controller.RejectUser)
	}

	// Staff operations: waiters included.
	staffGroup := router.Group("/staff")
	staffGroup.Use(utils.StaffMiddleware())
	{
		staffGroup.GET("/orders", controller.GetRestaurantOrders)
		staffGroup.PUT("/orders/:id/status", controller.UpdateOrderStatus)
		staffGroup.POST("/sessions/:id/close", controller.CloseSessionBill)
	}

	// Authenticated, any role.
	userGroup := router.Group("/me")
	userGroup.Use(utils.AuthMiddleware())
	{
		userGroup.GET("", controller.GetMe)
	}

	router.POST("/auth/register", auth.Register)
	router.POST("/auth/login", auth.Login)
	router.POST("/auth/refresh-token", auth.RefreshTokenFunc)

	// Two-phase upload. Issuing the location requires auth; the PUT is
	// authorized by the one-time ticket itself.
	router.POST("/uploads/url", utils.AuthMiddleware(), controller.GenerateUploadURL)
	router.PUT("/uploads/:ticket", controller.ReceiveUpload)

	// Public storefront.
	router.GET("/restaurants", controller.GetRestaurants)
	router.GET("/restaurants/:id", controller.GetRestaurantByID)
	router.GET("/restaurants/:restaurant_id/menu", controller.GetMenuByRestaurant)
	router.GET("/menu-items/:id", controller.GetMenuItemByID)
	router.GET("/qr/:token", controller.ResolveQR)

	// Anonymous dine-in session flow.
	router.POST("/sessions/resolve", controller.ResolveSession)
	router.POST("/sessions", controller.EnsureSession)
	router.GET("/sessions/:id", controller.GetSession)
	router.GET("/sessions/:id/cart", controller.GetSessionCart)
	router.POST("/sessions/:id/cart", controller.AddToSessionCart)
	router.DELETE("/sessions/:id/cart", controller.ClearSessionCart)
	router.POST("/sessions/:id/checkout", controller.Checkout)
	router.GET("/sessions/:id/orders", controller.GetSessionOrders)
	router.GET("/sessions/:id/bill", controller.GetSessionBill)
	router.POST("/sessions/:id/waiter", controller.CallWaiter)
	router.POST("/sessions/:id/bill-request", controller.RequestBill)
	router.GET("/sessions/:id/events", notify.SSEHandler(hub))

	// Delivery cart, keyed by device.
	router.GET("/devices/:device_id/cart", controller.GetDeliveryCart)
	router.POST("/devices/:device_id/cart", controller.AddToDeliveryCart)
	router.DELETE("/devices/:device_id/cart", controller.ClearDeliveryCart)
	router.POST("/devices/:device_id/reset", controller.ResetDevice)
}
