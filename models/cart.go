package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"index" json:"user_id"`
	IsPaid    bool       `gorm:"default:false" json:"is_paid"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is unique per (cart, plane); adding an existing plane bumps the
// quantity instead of inserting a second row.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CartID   uint      `gorm:"index;uniqueIndex:idx_cart_plane" json:"cart_id"`
	PlaneID  uint      `gorm:"uniqueIndex:idx_cart_plane" json:"plane_id"`
	Plane    Plane     `gorm:"foreignKey:PlaneID;constraint:OnDelete:CASCADE" json:"plane"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// TotalPrice is recomputed from the live plane price on every read.
// Plane must be preloaded.
func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.Plane.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalPrice sums the item totals. Items and their planes must be preloaded.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].TotalPrice())
	}
	return total
}
