package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/teaspace-dev/teaspace-api/controllers/account"
	"github.com/teaspace-dev/teaspace-api/mailer"
	"github.com/teaspace-dev/teaspace-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration, login and the two-step password
// recovery flow.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, mail mailer.Sender) {
	r.POST("/register_user", accountControllers.Register(db))
	r.POST("/login_user", accountControllers.Login(db))
	r.POST("/send_recovery_code", accountControllers.SendRecoveryCode(db, mail))
	r.POST("/reset_password", accountControllers.ResetPassword(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", accountControllers.GetProfile(db))
	}
}
