package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plane is a catalog product. Category is optional; a deleted category
// leaves its planes in place with a null category_id.
type Plane struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID *uint           `gorm:"index" json:"category_id"`
	Category   *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Name       string          `gorm:"not null" json:"name"`
	Type       string          `json:"type"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Details    string          `json:"details"`
	Image      string          `json:"image"`
	CreatedAt  time.Time       `json:"created_at"`
}
