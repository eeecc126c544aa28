package orderControllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teaspace-dev/teaspace-api/models"
	"gorm.io/gorm"
)

// activeBankPayment picks the payment method shown at checkout. Newest
// updated active record wins, so ties are never left to storage order.
func activeBankPayment(db *gorm.DB) (*models.BankPayment, error) {
	var bank models.BankPayment
	err := db.Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&bank).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func bankJSON(bank *models.BankPayment) gin.H {
	return gin.H{
		"name":           bank.Name,
		"bank_name":      bank.BankName,
		"account_name":   bank.AccountName,
		"account_number": bank.AccountNumber,
		"routing_number": bank.RoutingNumber,
		"instructions":   bank.Instructions,
	}
}

// POST /place-order
// Form-encoded billing fields. The payment method is resolved before
// anything is written; order, items, address and the cart clearing then
// commit or roll back together.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		firstName := c.PostForm("first_name")
		lastName := c.PostForm("last_name")
		addressLine := c.PostForm("address")
		city := c.PostForm("city")
		email := c.PostForm("email")
		phone := c.PostForm("phone")

		if firstName == "" || lastName == "" || addressLine == "" || city == "" || email == "" || phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please fill in all required billing fields."})
			return
		}

		bank, err := activeBankPayment(db)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Bank payment method is not available."})
				return
			}
			log.Printf("place-order: bank payment lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to place order"})
			return
		}

		var orderID uint
		emptyCart := false

		err = db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items.Plane").
				Where("user_id = ? AND is_paid = ?", userID, false).
				First(&cart).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					emptyCart = true
					return nil
				}
				return err
			}
			if len(cart.Items) == 0 {
				emptyCart = true
				return nil
			}

			order := models.Order{
				UserID:     userID,
				CartID:     cart.CartID,
				TotalPrice: cart.TotalPrice(),
				IsPaid:     false,
				CreatedAt:  time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orderID = order.ID

			for i := range cart.Items {
				item := &cart.Items[i]
				planeID := item.PlaneID
				// The live catalog price is the authoritative snapshot,
				// not anything stored on the cart row.
				orderItem := models.OrderItem{
					OrderID:  order.ID,
					PlaneID:  &planeID,
					Quantity: item.Quantity,
					Price:    item.Plane.Price,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
			}

			address := models.Address{
				OrderID:         order.ID,
				FirstName:       firstName,
				LastName:        lastName,
				Company:         c.PostForm("company_name"),
				Address:         addressLine,
				Apartment:       c.PostForm("apartment"),
				City:            city,
				State:           c.PostForm("state"),
				ZipCode:         c.PostForm("zip"),
				Country:         c.PostForm("country"),
				Email:           email,
				Phone:           phone,
				ShipToDifferent: c.PostForm("ship_to_different") != "",
				ShipFirstName:   c.PostForm("ship_first_name"),
				ShipLastName:    c.PostForm("ship_last_name"),
				ShipCompany:     c.PostForm("ship_company"),
				ShipAddress:     c.PostForm("ship_address"),
				ShipApartment:   c.PostForm("ship_apartment"),
				ShipCity:        c.PostForm("ship_city"),
				ShipState:       c.PostForm("ship_state"),
				ShipZipCode:     c.PostForm("ship_zip"),
				ShipEmail:       c.PostForm("ship_email"),
				ShipPhone:       c.PostForm("ship_phone"),
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}

			// Empty the cart; the cart row itself stays for reuse.
			return tx.Where("cart_id = ?", cart.CartID).
				Delete(&models.CartItem{}).Error
		})
		if err != nil {
			log.Printf("place-order: transaction failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to place order"})
			return
		}
		if emptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Your cart is empty."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"order_id": orderID,
			"bank":     bankJSON(bank),
		})
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items.Plane").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Printf("get-orders: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
// Serves both the confirmation and the detail page: the order with its
// items and address, plus the currently active payment instructions.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items.Plane").
			Preload("Address").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Printf("get-order: lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		resp := gin.H{"order": order}
		if bank, err := activeBankPayment(db); err == nil {
			resp["bank"] = bankJSON(bank)
		}
		c.JSON(http.StatusOK, resp)
	}
}
