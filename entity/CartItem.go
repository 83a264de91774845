package entity

// CartItem is the snapshot of a menu item taken at order time.
// Price and name stay frozen even if the menu is edited later.
type CartItem struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"index" json:"-"`

	MenuID uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
}
