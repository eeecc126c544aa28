package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/teaspace-dev/teaspace-api/mailer"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mail mailer.Sender) {
	// Public account routes (no middleware)
	SetupAuthRoutes(r, db, mail)

	// Public catalog browsing
	SetupCatalogRoutes(r, db)

	// Cart routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Checkout and order history (JWT-protected)
	SetupOrderRoutes(r, db)

	// Contact form
	SetupContactRoutes(r, mail)
}
