package routes

import (
	"github.com/gin-gonic/gin"
	contactControllers "github.com/teaspace-dev/teaspace-api/controllers/contact"
	"github.com/teaspace-dev/teaspace-api/mailer"
)

// SetupContactRoutes registers the contact-form endpoint.
func SetupContactRoutes(r *gin.Engine, mail mailer.Sender) {
	r.POST("/contact_submit", contactControllers.SubmitContactForm(mail))
}
