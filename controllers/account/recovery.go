package accountControllers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/teaspace-dev/teaspace-api/auth"
	"github.com/teaspace-dev/teaspace-api/mailer"
	"github.com/teaspace-dev/teaspace-api/models"
	"gorm.io/gorm"
)

// Recovery codes are single-use and die after 10 minutes, independent of
// any session lifetime.
const recoveryCodeTTL = 10 * time.Minute

func generateRecoveryCode() (string, error) {
	// Uniform in [100000, 999999].
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// POST /send_recovery_code
// Form field: email. Unknown addresses are a 404 and leave no state behind.
func SendRecoveryCode(db *gorm.DB, mail mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "No account found with that email."})
				return
			}
			log.Printf("send-recovery-code: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send recovery code"})
			return
		}

		code, err := generateRecoveryCode()
		if err != nil {
			log.Printf("send-recovery-code: code generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send recovery code"})
			return
		}
		codeHash, err := auth.HashPassword(code)
		if err != nil {
			log.Printf("send-recovery-code: hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send recovery code"})
			return
		}

		// One outstanding code per address.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("email = ?", user.Email).
				Delete(&models.PasswordReset{}).Error; err != nil {
				return err
			}
			return tx.Create(&models.PasswordReset{
				ID:        uuid.NewString(),
				Email:     user.Email,
				CodeHash:  codeHash,
				ExpiresAt: time.Now().Add(recoveryCodeTTL),
			}).Error
		})
		if err != nil {
			log.Printf("send-recovery-code: store failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send recovery code"})
			return
		}

		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>Your password recovery code is:</p><h2>%s</h2><p>The code expires in 10 minutes.</p>",
			user.FullName, code,
		)
		if err := mail.Send(user.Email, "Password Recovery Code", body); err != nil {
			log.Printf("send-recovery-code: mail delivery failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send recovery code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "A recovery code has been sent to your email."})
	}
}

// POST /reset_password
// Form fields: email, recovery_code, new_password. A missing or expired
// record reads as an expired recovery session; a wrong code leaves the
// record intact for another try.
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		code := c.PostForm("recovery_code")
		newPassword := c.PostForm("new_password")

		if email == "" || code == "" || newPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email, recovery code and new password are required."})
			return
		}

		var reset models.PasswordReset
		err := db.Where("email = ?", email).First(&reset).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recovery session has expired. Please request a new code."})
			return
		}
		if err != nil {
			log.Printf("reset-password: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}
		if time.Now().After(reset.ExpiresAt) {
			db.Delete(&reset)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recovery session has expired. Please request a new code."})
			return
		}

		if !auth.CheckPassword(reset.CodeHash, code) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recovery code."})
			return
		}

		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			log.Printf("reset-password: hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.User{}).
				Where("email = ?", email).
				Update("password_hash", hash).Error; err != nil {
				return err
			}
			// Single use: the consumed code is gone for good.
			return tx.Where("email = ?", email).
				Delete(&models.PasswordReset{}).Error
		})
		if err != nil {
			log.Printf("reset-password: update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password has been reset. You can now log in.", "redirect_url": "/login/"})
	}
}
