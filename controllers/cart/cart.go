package cartControllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/teaspace-dev/teaspace-api/models"
	"gorm.io/gorm"
)

type UpdateCartItemInput struct {
	ItemID uint   `json:"item_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// POST /add-to-cart
// Form field: plane_id. Creates the caller's open cart on first use; an
// item that already exists gets its quantity bumped atomically instead of
// a second row being inserted.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		planeID := c.PostForm("plane_id")
		if planeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plane_id is required"})
			return
		}

		var plane models.Plane
		if err := db.First(&plane, "id = ?", planeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("add-to-cart: plane lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var cartID uint
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ? AND is_paid = ?", userID, false).
				FirstOrCreate(&cart, models.Cart{UserID: userID}).Error; err != nil {
				return err
			}
			cartID = cart.CartID

			var item models.CartItem
			err := tx.Where("cart_id = ? AND plane_id = ?", cart.CartID, plane.ID).
				First(&item).Error
			if err == gorm.ErrRecordNotFound {
				return tx.Create(&models.CartItem{
					CartID:   cart.CartID,
					PlaneID:  plane.ID,
					Quantity: 1,
					AddedAt:  time.Now(),
				}).Error
			}
			if err != nil {
				return err
			}

			// Atomic increment so concurrent adds never lose an update.
			return tx.Model(&item).
				UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error
		})
		if err != nil {
			log.Printf("add-to-cart: transaction failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		var count int64
		if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
			log.Printf("add-to-cart: count failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    fmt.Sprintf("%s added to cart", plane.Name),
			"cart_count": count,
		})
	}
}

// POST /update_cart_item
// JSON body: {item_id, action} with action one of increase|decrease|remove.
// The item is resolved through the caller's open cart; anything else is a
// plain 404 rather than a separate authorization error.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}
		if input.Action != "increase" && input.Action != "decrease" && input.Action != "remove" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
			return
		}

		var (
			quantity  int
			itemTotal = decimal.Zero
			cartTotal = decimal.Zero
			cartCount int64
			notFound  bool
		)

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ? AND is_paid = ?", userID, false).
				First(&cart).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					notFound = true
					return nil
				}
				return err
			}

			var item models.CartItem
			err := tx.Preload("Plane").
				Where("id = ? AND cart_id = ?", input.ItemID, cart.CartID).
				First(&item).Error
			if err == gorm.ErrRecordNotFound {
				notFound = true
				return nil
			}
			if err != nil {
				return err
			}

			switch input.Action {
			case "increase":
				if err := tx.Model(&models.CartItem{}).
					Where("id = ?", item.ID).
					UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
					return err
				}
			case "decrease":
				// Guarded decrement: only rows above quantity 1 are
				// decremented, so a quantity of 0 can never persist. A row
				// already at 1 is deleted instead.
				res := tx.Model(&models.CartItem{}).
					Where("id = ? AND quantity > 1", item.ID).
					UpdateColumn("quantity", gorm.Expr("quantity - 1"))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
						return err
					}
				}
			case "remove":
				if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
					return err
				}
			}

			// Re-read the row for the response; it may be gone.
			var updated models.CartItem
			err = tx.Preload("Plane").First(&updated, item.ID).Error
			if err == nil {
				quantity = updated.Quantity
				itemTotal = updated.TotalPrice()
			} else if err != gorm.ErrRecordNotFound {
				return err
			}

			var remaining []models.CartItem
			if err := tx.Preload("Plane").Where("cart_id = ?", cart.CartID).
				Find(&remaining).Error; err != nil {
				return err
			}
			cartCount = int64(len(remaining))
			for i := range remaining {
				cartTotal = cartTotal.Add(remaining[i].TotalPrice())
			}
			return nil
		})
		if err != nil {
			log.Printf("update-cart-item: transaction failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item"})
			return
		}
		if notFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"quantity":   quantity,
			"item_total": itemTotal,
			"cart_total": cartTotal,
			"cart_count": cartCount,
		})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		err := db.Preload("Items.Plane").
			Where("user_id = ? AND is_paid = ?", userID, false).
			First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"items":      []models.CartItem{},
				"cart_total": decimal.Zero,
				"cart_count": 0,
			})
			return
		}
		if err != nil {
			log.Printf("get-cart: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      cart.Items,
			"cart_total": cart.TotalPrice(),
			"cart_count": len(cart.Items),
		})
	}
}
