package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// OrderService creates orders from carts and drives the order status machine.
// Cross-entity side effects (freeing the table on completion) happen here, in
// the same transaction as the status change.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrderFromCart snapshots the table's cart into a new pending order and
// clears the cart. Both happen in one transaction: a crash in between cannot
// duplicate or lose the order.
func (s *OrderService) CreateOrderFromCart(tableID uint, notes string) (*models.Order, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	var table models.Table
	err := lockForUpdate(tx).Where("id = ? AND is_active = ?", tableID, true).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("table")
		}
		return nil, err
	}
	if !table.IsOccupied() {
		return nil, utils.NewConflict("table %s is not occupied", table.TableNumber)
	}

	var cart models.Cart
	err = tx.Preload("CartItems").Where("table_id = ?", tableID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && cart.IsEmpty()) {
		return nil, utils.NewConflict("cart is empty")
	}
	if err != nil {
		return nil, err
	}

	order := models.Order{
		TableID:    tableID,
		Status:     models.OrderPending,
		OrderNotes: notes,
	}
	for _, cartItem := range cart.CartItems {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			MenuID:    cartItem.MenuID,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.UnitPrice,
			Subtotal:  cartItem.Subtotal,
			Notes:     cartItem.Notes,
		})
	}
	order.CalculateAmounts()

	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&cart).Error; err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d created from table %s cart (total=%.2f)",
		order.ID, table.TableNumber, order.TotalAmount)
	return s.GetOrder(order.ID)
}

// GetOrder loads an order with its items and table.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("OrderItems").Preload("OrderItems.Menu").Preload("Table").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("order")
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	query := s.db.Preload("OrderItems").Preload("Table").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ActiveOrdersByTable returns the table's orders that are still in flight.
func (s *OrderService) ActiveOrdersByTable(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("OrderItems").
		Where("table_id = ? AND status IN ?", tableID,
			[]string{models.OrderPending, models.OrderPreparing, models.OrderReady}).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus advances the order along its legal edges. Completing an
// order also frees the owning table, in the same transaction.
func (s *OrderService) UpdateOrderStatus(orderID uint, newStatus string) (*models.Order, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	var order models.Order
	err := lockForUpdate(tx).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("order")
		}
		return nil, err
	}

	switch newStatus {
	case models.OrderPreparing:
		err = order.Prepare()
	case models.OrderReady:
		err = order.Ready()
	case models.OrderCompleted:
		err = order.Complete()
	case models.OrderCancelled:
		err = order.Cancel()
	default:
		return nil, utils.NewConflict("unknown order status: %s", newStatus)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Save(&order).Error; err != nil {
		return nil, err
	}

	if newStatus == models.OrderCompleted {
		if err := s.releaseTable(tx, order.TableID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	return s.GetOrder(order.ID)
}

// CancelOrder aborts a pending order and records the reason in the notes.
func (s *OrderService) CancelOrder(orderID uint, reason string) (*models.Order, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	var order models.Order
	err := lockForUpdate(tx).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("order")
		}
		return nil, err
	}

	if !order.CanCancel() {
		return nil, utils.NewConflict("order in status %s cannot be cancelled", order.Status)
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	order.OrderNotes = appendNote(order.OrderNotes, "cancelled: "+reason)

	if err := tx.Save(&order).Error; err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d cancelled: %s", order.ID, reason)
	return s.GetOrder(order.ID)
}

// TodayStats summarizes today's order volume and completed revenue.
func (s *OrderService) TodayStats() (total int64, completed int64, revenue float64) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&total)
	s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", start, end, models.OrderCompleted).
		Count(&completed)
	s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", start, end, models.OrderCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue)
	return total, completed, revenue
}

// StatusCounts returns order counts per status for the admin dashboard.
func (s *OrderService) StatusCounts() map[string]int64 {
	counts := make(map[string]int64)
	statuses := []string{
		models.OrderPending, models.OrderPreparing, models.OrderReady,
		models.OrderCompleted, models.OrderCancelled,
	}
	for _, status := range statuses {
		var n int64
		s.db.Model(&models.Order{}).Where("status = ?", status).Count(&n)
		counts[status] = n
	}
	return counts
}

func (s *OrderService) releaseTable(tx *gorm.DB, tableID uint) error {
	var table models.Table
	if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
		return err
	}
	table.MakeAvailable()
	return tx.Save(&table).Error
}

func appendNote(notes, addition string) string {
	if notes == "" {
		return "[" + addition + "]"
	}
	return fmt.Sprintf("%s [%s]", notes, addition)
}
