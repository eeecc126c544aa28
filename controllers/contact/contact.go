package contactControllers

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/teaspace-dev/teaspace-api/mailer"
)

// POST /contact_submit
// Form fields: name, email, subject (optional), message. The submission is
// formatted as HTML and mailed to the configured admin address.
func SubmitContactForm(mail mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		subject := c.PostForm("subject")
		message := c.PostForm("message")

		if name == "" || email == "" || message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required."})
			return
		}
		if subject == "" {
			subject = "Website Contact Form"
		}

		body := fmt.Sprintf(
			"<h3>New contact form submission</h3>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Subject:</strong> %s</p>"+
				"<p><strong>Message:</strong></p><p>%s</p>",
			html.EscapeString(name),
			html.EscapeString(email),
			html.EscapeString(subject),
			html.EscapeString(message),
		)

		adminEmail := os.Getenv("ADMIN_EMAIL")
		if err := mail.Send(adminEmail, subject, body); err != nil {
			log.Printf("contact-submit: mail delivery failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Thanks for reaching out! We'll get back to you soon."})
	}
}
