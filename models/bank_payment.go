package models

import "time"

type BankPayment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"default:'Bank Transfer'" json:"name"`
	BankName      string    `gorm:"not null" json:"bank_name"`
	AccountName   string    `gorm:"not null" json:"account_name"`
	AccountNumber string    `gorm:"not null" json:"account_number"`
	RoutingNumber string    `json:"routing_number"`
	Instructions  string    `json:"instructions"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
