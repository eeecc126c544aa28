package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order freezes the cart total at checkout time; later catalog price
// changes never touch it.
type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string          `gorm:"index;not null" json:"user_id"`
	CartID     uint            `gorm:"index" json:"cart_id"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_price"`
	IsPaid     bool            `gorm:"default:false" json:"is_paid"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address    *Address        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItem snapshots quantity and the plane's price at checkout.
// PlaneID goes null if the product is later removed from the catalog;
// the snapshot price keeps the line meaningful.
type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"index" json:"order_id"`
	PlaneID  *uint           `json:"plane_id"`
	Plane    *Plane          `gorm:"foreignKey:PlaneID;constraint:OnDelete:SET NULL" json:"plane,omitempty"`
	Quantity int             `gorm:"default:1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
}

func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
