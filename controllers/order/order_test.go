package orderControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/teaspace-dev/teaspace-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Plane{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Address{},
		&models.BankPayment{}, &models.PasswordReset{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupOrderRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/place-order", authAs(userID), PlaceOrder(db))
	r.GET("/orders", authAs(userID), GetUserOrders(db))
	r.GET("/orders/:orderID", authAs(userID), GetOrderByID(db))
	return r
}

func seedBankPayment(t *testing.T, db *gorm.DB) models.BankPayment {
	t.Helper()
	bank := models.BankPayment{
		Name:          "Bank Transfer",
		BankName:      "First National",
		AccountName:   "Teaspace Ltd",
		AccountNumber: "12345678",
		RoutingNumber: "0011",
		Instructions:  "Quote the order id in the transfer reference.",
		IsActive:      true,
	}
	if err := db.Create(&bank).Error; err != nil {
		t.Fatalf("failed to seed bank payment: %v", err)
	}
	return bank
}

// seedCart builds an open cart holding plane A ($100 x2) and plane B ($50 x1).
func seedCart(t *testing.T, db *gorm.DB, userID string) models.Cart {
	t.Helper()
	planeA := models.Plane{Name: "Cessna 172", Price: decimal.NewFromInt(100)}
	planeB := models.Plane{Name: "Piper PA-28", Price: decimal.NewFromInt(50)}
	if err := db.Create(&planeA).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&planeB).Error; err != nil {
		t.Fatal(err)
	}

	cart := models.Cart{UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatal(err)
	}
	items := []models.CartItem{
		{CartID: cart.CartID, PlaneID: planeA.ID, Quantity: 2, AddedAt: time.Now()},
		{CartID: cart.CartID, PlaneID: planeB.ID, Quantity: 1, AddedAt: time.Now()},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatal(err)
	}
	return cart
}

func billingForm() url.Values {
	return url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"address":    {"1 Hangar Way"},
		"city":       {"Nairobi"},
		"state":      {"Nairobi"},
		"zip":        {"00100"},
		"country":    {"Kenya"},
		"email":      {"ada@example.com"},
		"phone":      {"0700000000"},
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

// ----------------------- TESTS ----------------------- //

func TestCheckoutEmptyCartWritesNothing(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	r := setupOrderRouter(db, "user-1")

	w := postForm(r, "/place-order", billingForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Your cart is empty.", resp["message"])

	var orders, orderItems, addresses int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&orderItems)
	db.Model(&models.Address{}).Count(&addresses)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), orderItems)
	assert.Equal(t, int64(0), addresses)
}

func TestCheckoutSnapshotsTotalsAndClearsCart(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	cart := seedCart(t, db, "user-1")
	r := setupOrderRouter(db, "user-1")

	w := postForm(r, "/place-order", billingForm())
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.NotZero(t, resp["order_id"])

	bank := resp["bank"].(map[string]interface{})
	assert.Equal(t, "First National", bank["bank_name"])
	assert.Equal(t, "12345678", bank["account_number"])

	var order models.Order
	assert.NoError(t, db.Preload("Items").Preload("Address").First(&order).Error)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(250)),
		"expected total 250, got %s", order.TotalPrice)
	assert.False(t, order.IsPaid)
	assert.Len(t, order.Items, 2)

	prices := map[int]string{}
	for _, item := range order.Items {
		prices[item.Quantity] = item.Price.String()
	}
	assert.Equal(t, "100", prices[2])
	assert.Equal(t, "50", prices[1])

	// Billing address persisted one-to-one, country included
	assert.NotNil(t, order.Address)
	assert.Equal(t, "Kenya", order.Address.Country)

	var remaining int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&remaining)
	assert.Equal(t, int64(0), remaining)

	// The cart row itself survives, now empty
	var cartCount int64
	db.Model(&models.Cart{}).Count(&cartCount)
	assert.Equal(t, int64(1), cartCount)
}

func TestCheckoutFrozenAgainstLaterPriceChanges(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	seedCart(t, db, "user-1")
	r := setupOrderRouter(db, "user-1")

	w := postForm(r, "/place-order", billingForm())
	assert.Equal(t, http.StatusOK, w.Code)

	// Reprice the whole catalog after checkout
	assert.NoError(t, db.Model(&models.Plane{}).Where("1 = 1").
		Update("price", decimal.NewFromInt(9999)).Error)

	var order models.Order
	assert.NoError(t, db.Preload("Items").First(&order).Error)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(250)))
	for _, item := range order.Items {
		assert.False(t, item.Price.Equal(decimal.NewFromInt(9999)))
	}
}

func TestCheckoutWithoutPaymentMethodWritesNothing(t *testing.T) {
	db := getTestDB(t)
	seedCart(t, db, "user-1")
	r := setupOrderRouter(db, "user-1")

	w := postForm(r, "/place-order", billingForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bank payment method is not available.", resp["message"])

	// The payment method is resolved before the transaction opens, so the
	// order tables stay untouched and the cart keeps its items.
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.CartItem{}).Count(&items)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(2), items)
}

func TestCheckoutMissingBillingFields(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	seedCart(t, db, "user-1")
	r := setupOrderRouter(db, "user-1")

	form := billingForm()
	form.Del("first_name")
	w := postForm(r, "/place-order", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(0), orders)
}

func TestActiveBankPaymentNewestWins(t *testing.T) {
	db := getTestDB(t)

	old := models.BankPayment{BankName: "Old Bank", AccountName: "A", AccountNumber: "1", IsActive: true}
	assert.NoError(t, db.Create(&old).Error)
	newer := models.BankPayment{BankName: "New Bank", AccountName: "B", AccountNumber: "2", IsActive: true}
	assert.NoError(t, db.Create(&newer).Error)
	inactive := models.BankPayment{BankName: "Closed Bank", AccountName: "C", AccountNumber: "3", IsActive: false}
	assert.NoError(t, db.Create(&inactive).Error)

	// Push the newer record's updated_at clearly ahead.
	assert.NoError(t, db.Model(&newer).
		Update("updated_at", time.Now().Add(time.Hour)).Error)

	bank, err := activeBankPayment(db)
	assert.NoError(t, err)
	assert.Equal(t, "New Bank", bank.BankName)
}

func TestOrderLookupScopedToOwner(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	seedCart(t, db, "owner")

	ownerRouter := setupOrderRouter(db, "owner")
	w := postForm(ownerRouter, "/place-order", billingForm())
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)

	// The owner sees it
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/orders/%d", order.ID), nil)
	ownerRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Anyone else gets a 404
	otherRouter := setupOrderRouter(db, "intruder")
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", fmt.Sprintf("/orders/%d", order.ID), nil)
	otherRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHistoryNewestFirst(t *testing.T) {
	db := getTestDB(t)
	seedBankPayment(t, db)
	r := setupOrderRouter(db, "user-1")

	first := models.Order{UserID: "user-1", TotalPrice: decimal.NewFromInt(10), CreatedAt: time.Now().Add(-time.Hour)}
	second := models.Order{UserID: "user-1", TotalPrice: decimal.NewFromInt(20), CreatedAt: time.Now()}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
}
