package models

import "time"

// Cart is the pre-order basket scoped to one table. It is created lazily on the
// first item add and deleted when an order is created from it.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TableID   uint       `gorm:"not null;index" json:"table_id"`
	Table     Table      `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CartItems []CartItem `gorm:"foreignKey:CartID" json:"cart_items"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// TotalAmount sums the line subtotals.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.CartItems {
		total += item.Subtotal
	}
	return total
}

// TotalItemCount sums the line quantities.
func (c *Cart) TotalItemCount() int {
	var count int
	for _, item := range c.CartItems {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.CartItems) == 0
}
