package models

// Address holds the billing details submitted at checkout, plus the
// optional alternate shipping block when ship_to_different is set.
type Address struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"uniqueIndex" json:"order_id"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Company   string `json:"company"`
	Address   string `gorm:"not null" json:"address"`
	Apartment string `json:"apartment"`
	City      string `gorm:"not null" json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	ShipToDifferent bool   `json:"ship_to_different"`
	ShipFirstName   string `json:"ship_first_name"`
	ShipLastName    string `json:"ship_last_name"`
	ShipCompany     string `json:"ship_company"`
	ShipAddress     string `json:"ship_address"`
	ShipApartment   string `json:"ship_apartment"`
	ShipCity        string `json:"ship_city"`
	ShipState       string `json:"ship_state"`
	ShipZipCode     string `json:"ship_zip_code"`
	ShipEmail       string `json:"ship_email"`
	ShipPhone       string `json:"ship_phone"`
}
