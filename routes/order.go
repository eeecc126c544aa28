package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/teaspace-dev/teaspace-api/controllers/order"
	"github.com/teaspace-dev/teaspace-api/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout and order history. Requires JWT
// middleware.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("/place-order", orderControllers.PlaceOrder(db))
		orders.GET("/orders", orderControllers.GetUserOrders(db))
		orders.GET("/orders/:orderID", orderControllers.GetOrderByID(db))
	}
}
