package routes

import (
	"github.com/gin-gonic/gin"
	catalogcontroller "github.com/teaspace-dev/teaspace-api/controllers/catalog"
	"github.com/teaspace-dev/teaspace-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers public product and category browsing.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", catalogcontroller.GetPlanes(db))
	r.GET("/products/:id", catalogcontroller.GetPlaneByID(db))
	r.GET("/categories", catalogcontroller.GetAllCategories(db))

	// Back-office export, gated by API key
	export := r.Group("/export")
	export.Use(middleware.ValidateAPIKey)
	{
		export.GET("/products", catalogcontroller.ExportPlanesToExcel(db))
	}
}
