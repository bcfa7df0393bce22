package models

import "time"

// CartItem is one menu line inside a cart. A cart holds at most one line per
// menu; adding the same menu again bumps the quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"cart_id"`
	Cart      Cart      `gorm:"foreignKey:CartID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID    uint      `gorm:"not null" json:"menu_id"`
	Menu      Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Notes     string    `gorm:"type:varchar(200)" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// UpdateQuantity sets the quantity and recomputes the subtotal.
func (ci *CartItem) UpdateQuantity(quantity int) {
	ci.Quantity = quantity
	ci.CalculateSubtotal()
}

func (ci *CartItem) CalculateSubtotal() {
	ci.Subtotal = ci.UnitPrice * float64(ci.Quantity)
}
