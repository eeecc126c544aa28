package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/teaspace-dev/teaspace-api/controllers/cart"
	"github.com/teaspace-dev/teaspace-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/cart", cartControllers.GetCart(db))
		cartGroup.POST("/add-to-cart", cartControllers.AddToCart(db))
		cartGroup.POST("/update_cart_item", cartControllers.UpdateCartItem(db))
	}
}
