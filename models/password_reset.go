package models

import "time"

// PasswordReset is a short-lived, single-use recovery record. The row is
// deleted when the code is consumed; an expired row counts as absent.
type PasswordReset struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	CodeHash  string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
