package accountControllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/teaspace-dev/teaspace-api/auth"
	"github.com/teaspace-dev/teaspace-api/models"
	"gorm.io/gorm"
)

// POST /register_user
// Form fields: full_name, username, email, contact, password,
// confirm_password. Duplicate email or username is a 409.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fullName := c.PostForm("full_name")
		username := c.PostForm("username")
		email := c.PostForm("email")
		phone := c.PostForm("contact")
		password := c.PostForm("password")
		confirmPassword := c.PostForm("confirm_password")

		if fullName == "" || username == "" || email == "" || phone == "" || password == "" || confirmPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields."})
			return
		}
		if password != confirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match."})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Printf("register: email check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered."})
			return
		}
		if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			log.Printf("register: username check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken."})
			return
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("register: hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        email,
			Username:     username,
			FullName:     fullName,
			Phone:        phone,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("register: create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Account created successfully!",
			"redirect_url": "/login/",
		})
	}
}

// POST /login_user
// A generic invalid-credentials message covers both unknown email and wrong
// password, so accounts cannot be enumerated.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
			return
		}

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Printf("login: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		if err == gorm.ErrRecordNotFound || !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			log.Printf("login: token issuing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      fmt.Sprintf("Welcome back, %s!", user.FullName),
			"token":        token,
			"redirect_url": "/",
		})
	}
}

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
