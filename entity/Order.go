package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Email      string  `gorm:"index" json:"email"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	OrderType  string  `json:"orderType"` // "delivery" or "dine-in"
	Address    string  `json:"address"`
	TableNo    string  `json:"tableNo"`
	TotalPrice float64 `json:"totalPrice"`

	Cart []CartItem `gorm:"foreignKey:OrderID" json:"cart"`

	Date          time.Time `json:"date"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"` // "pending" -> "confirmed"
	AdminMessage  string    `json:"adminMessage"`

	Rating *float64 `json:"rating"`
	Rated  bool     `json:"rated"`
}
