package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Its-aman09/ecommerce/controllers/order"
	receiptControllers "github.com/Its-aman09/ecommerce/controllers/receipt"
	"github.com/Its-aman09/ecommerce/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// checkout and everything order-scoped requires a logged-in user
	r.POST("/checkout", middleware.RequireUser, orderControllers.CheckoutHandler(db))
	r.GET("/order/:id/success", middleware.RequireUser, orderControllers.OrderSuccessHandler(db))
	r.GET("/order/:id/receipt", middleware.RequireUser, receiptControllers.DownloadReceipt(db))
	r.GET("/user/orders", middleware.RequireUser, orderControllers.GetUserOrdersHandler(db))

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
