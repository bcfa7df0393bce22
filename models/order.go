package models

import (
	"time"

	"github.com/adrianhartanto/cafe-order-app/utils"
)

// Order status values
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order snapshots a cart at creation time. The item list and prices never
// change afterwards; only the status moves.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	TableID       uint        `gorm:"not null;index" json:"table_id"`
	Table         Table       `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	UsedPoints    float64     `gorm:"type:decimal(10,2);not null;default:0" json:"used_points"`
	PaymentAmount float64     `gorm:"type:decimal(10,2);not null" json:"payment_amount"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderNotes    string      `gorm:"type:varchar(500)" json:"order_notes"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

// CalculateAmounts recomputes the totals from the item subtotals. TotalAmount
// and PaymentAmount are never edited by hand.
func (o *Order) CalculateAmounts() {
	var total float64
	for _, item := range o.OrderItems {
		total += item.Subtotal
	}
	o.TotalAmount = total
	o.PaymentAmount = total - o.UsedPoints
}

// Prepare moves the order to preparing, normally after a successful payment.
func (o *Order) Prepare() error {
	if o.Status != OrderPending {
		return utils.NewInvalidState("order", o.Status, OrderPreparing)
	}
	o.Status = OrderPreparing
	return nil
}

// Ready marks the order as ready to serve.
func (o *Order) Ready() error {
	if o.Status != OrderPreparing {
		return utils.NewInvalidState("order", o.Status, OrderReady)
	}
	o.Status = OrderReady
	return nil
}

// Complete finishes the order. The caller is responsible for freeing the table
// in the same transaction.
func (o *Order) Complete() error {
	if o.Status != OrderReady {
		return utils.NewInvalidState("order", o.Status, OrderCompleted)
	}
	o.Status = OrderCompleted
	return nil
}

// CanCancel reports whether the order is still inside the cancellation window.
func (o *Order) CanCancel() bool {
	return o.Status == OrderPending
}

// Cancel aborts a pending order. Any other status is a dead end.
func (o *Order) Cancel() error {
	if !o.CanCancel() {
		return utils.NewInvalidState("order", o.Status, OrderCancelled)
	}
	o.Status = OrderCancelled
	return nil
}
