package models

import (
	"time"

	"github.com/adrianhartanto/cafe-order-app/utils"
)

// Payment status values
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment method values
const (
	PaymentMethodCard = "CARD"
	PaymentMethodCash = "CASH"
)

// Payment records a single settlement attempt, one-to-one with an order.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null;index" json:"order_id"`
	Order         Order      `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PaymentMethod string     `gorm:"type:varchar(50);not null" json:"payment_method"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID string     `gorm:"type:varchar(100)" json:"transaction_id"`
	PaymentTime   *time.Time `json:"payment_time,omitempty"`
	FailureReason string     `gorm:"type:varchar(500)" json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

// Complete marks the payment as settled and stamps the payment time.
func (p *Payment) Complete(transactionID string) {
	now := time.Now()
	p.Status = PaymentCompleted
	p.TransactionID = transactionID
	p.PaymentTime = &now
}

// Fail records the gateway decline reason. The order stays payable.
func (p *Payment) Fail(reason string) {
	p.Status = PaymentFailed
	p.FailureReason = reason
}

func (p *Payment) CanRefund() bool {
	return p.Status == PaymentCompleted
}

// Refund reverses a completed payment.
func (p *Payment) Refund() error {
	if !p.CanRefund() {
		return utils.NewInvalidState("payment", p.Status, PaymentRefunded)
	}
	p.Status = PaymentRefunded
	return nil
}
