package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// PaymentService settles orders. A successful payment advances the order to
// preparing; a refund cancels it. Both sides of each pair commit together.
type PaymentService struct {
	db      *gorm.DB
	gateway PaymentGateway
}

func NewPaymentService(db *gorm.DB, gateway PaymentGateway) *PaymentService {
	return &PaymentService{db: db, gateway: gateway}
}

// ProcessCardPayment runs an authorization through the gateway. On approval
// the payment completes and the order moves to preparing; on decline the
// attempt is recorded as failed and the order stays payable.
func (s *PaymentService) ProcessCardPayment(orderID uint, amount float64) (*models.Payment, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	order, payment, err := s.preparePaymentAttempt(tx, orderID, amount, models.PaymentMethodCard)
	if err != nil {
		return nil, err
	}

	transactionID := generateTransactionID()
	payment.TransactionID = transactionID
	if err := tx.Save(payment).Error; err != nil {
		return nil, err
	}

	if authErr := s.gateway.Authorize(amount, models.PaymentMethodCard); authErr != nil {
		payment.Fail(authErr.Error())
		if err := tx.Save(payment).Error; err != nil {
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		utils.InfoLogger.Printf("Card payment declined for order %d: %v", orderID, authErr)
		return payment, authErr
	}

	payment.Complete(transactionID)
	if err := order.Prepare(); err != nil {
		return nil, err
	}

	if err := tx.Save(payment).Error; err != nil {
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Card payment completed: order=%d txn=%s amount=%.2f",
		orderID, transactionID, amount)
	return payment, nil
}

// ProcessCashPayment settles immediately with no authorization round-trip and
// advances the order to preparing.
func (s *PaymentService) ProcessCashPayment(orderID uint, amount float64) (*models.Payment, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	order, payment, err := s.preparePaymentAttempt(tx, orderID, amount, models.PaymentMethodCash)
	if err != nil {
		return nil, err
	}

	transactionID := generateTransactionID()
	payment.Complete(transactionID)
	if err := order.Prepare(); err != nil {
		return nil, err
	}

	if err := tx.Save(payment).Error; err != nil {
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Cash payment completed: order=%d txn=%s amount=%.2f",
		orderID, transactionID, amount)
	return payment, nil
}

// RefundPayment reverses a completed payment through the gateway and cancels
// the owning order. Refund and cancellation commit together or not at all.
func (s *PaymentService) RefundPayment(paymentID uint, reason string) (*models.Payment, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	var payment models.Payment
	err := lockForUpdate(tx).First(&payment, paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("payment")
		}
		return nil, err
	}

	if !payment.CanRefund() {
		return nil, utils.NewConflict("payment in status %s cannot be refunded", payment.Status)
	}

	if err := s.gateway.Refund(payment.TransactionID); err != nil {
		return nil, err
	}

	if err := payment.Refund(); err != nil {
		return nil, err
	}
	payment.FailureReason = "refund: " + reason

	var order models.Order
	if err := lockForUpdate(tx).First(&order, payment.OrderID).Error; err != nil {
		return nil, err
	}
	// Refund is the one path that cancels an order past its pending window.
	order.Status = models.OrderCancelled
	order.OrderNotes = appendNote(order.OrderNotes, "refunded: "+reason)

	if err := tx.Save(&payment).Error; err != nil {
		return nil, err
	}
	if err := tx.Save(&order).Error; err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Payment %d refunded (txn=%s): %s", payment.ID, payment.TransactionID, reason)
	return &payment, nil
}

func (s *PaymentService) GetPayment(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("payment")
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) GetPaymentByOrder(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("payment")
		}
		return nil, err
	}
	return &payment, nil
}

// TodayStats summarizes today's completed payment count and volume.
func (s *PaymentService) TodayStats() (count int64, total float64) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	s.db.Model(&models.Payment{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", start, end, models.PaymentCompleted).
		Count(&count)
	s.db.Model(&models.Payment{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", start, end, models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return count, total
}

// preparePaymentAttempt locks and validates the order, then returns a pending
// payment row for this attempt. A previous failed attempt is reused so an
// order never accumulates more than one payment record.
func (s *PaymentService) preparePaymentAttempt(tx *gorm.DB, orderID uint, amount float64, method string) (*models.Order, *models.Payment, error) {
	var order models.Order
	err := lockForUpdate(tx).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NewNotFound("order")
		}
		return nil, nil, err
	}

	if order.Status != models.OrderPending {
		return nil, nil, utils.NewConflict("order in status %s cannot be paid", order.Status)
	}
	if order.PaymentAmount != amount {
		return nil, nil, utils.NewConflict("payment amount %.2f does not match order amount %.2f",
			amount, order.PaymentAmount)
	}

	var payment models.Payment
	err = tx.Where("order_id = ?", orderID).First(&payment).Error
	switch {
	case err == nil:
		if payment.Status == models.PaymentCompleted {
			return nil, nil, utils.NewConflict("order %d is already paid", orderID)
		}
		payment.PaymentMethod = method
		payment.Amount = amount
		payment.Status = models.PaymentPending
		payment.FailureReason = ""
		if err := tx.Save(&payment).Error; err != nil {
			return nil, nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		payment = models.Payment{
			OrderID:       orderID,
			PaymentMethod: method,
			Amount:        amount,
			Status:        models.PaymentPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, err
	}

	return &order, &payment, nil
}

// generateTransactionID builds an attempt-scoped identifier: timestamp plus a
// random suffix. It is not a security token.
func generateTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}
