package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// CartService mutates the per-table basket. Every multi-step update runs in
// one transaction with the table row locked, so two customers hammering the
// same table cannot produce duplicate lines or lost updates.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddItem merges the menu into an existing cart line or appends a new one with
// the menu's current price snapshotted.
func (s *CartService) AddItem(tableID, menuID uint, quantity int, notes string) (*models.Cart, error) {
	if quantity < 1 {
		return nil, utils.NewConflict("quantity must be at least 1")
	}

	tx := s.db.Begin()
	defer tx.Rollback()

	table, err := s.lockOccupiedTable(tx, tableID)
	if err != nil {
		return nil, err
	}

	var menu models.Menu
	if err := tx.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu")
		}
		return nil, err
	}
	if !menu.IsAvailable {
		return nil, utils.NewConflict("menu %s is not available", menu.Name)
	}

	cart, err := s.getOrCreateCart(tx, table.ID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = tx.Where("cart_id = ? AND menu_id = ?", cart.ID, menu.ID).First(&item).Error
	switch {
	case err == nil:
		item.UpdateQuantity(item.Quantity + quantity)
		if err := tx.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.ID,
			MenuID:    menu.ID,
			Quantity:  quantity,
			UnitPrice: menu.Price,
			Notes:     notes,
		}
		item.CalculateSubtotal()
		if err := tx.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Cart item added: table=%d menu=%s qty=%d", tableID, menu.Name, quantity)
	return s.GetCart(tableID)
}

// UpdateItemQuantity sets a cart line to a new quantity (at least 1).
func (s *CartService) UpdateItemQuantity(tableID, itemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, utils.NewConflict("quantity must be at least 1")
	}

	tx := s.db.Begin()
	defer tx.Rollback()

	if _, err := s.lockOccupiedTable(tx, tableID); err != nil {
		return nil, err
	}

	item, err := s.findCartItemForTable(tx, tableID, itemID)
	if err != nil {
		return nil, err
	}

	var menu models.Menu
	if err := tx.First(&menu, item.MenuID).Error; err != nil {
		return nil, err
	}
	if !menu.IsAvailable {
		return nil, utils.NewConflict("menu %s is not available", menu.Name)
	}

	item.UpdateQuantity(quantity)
	if err := tx.Save(item).Error; err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return s.GetCart(tableID)
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(tableID, itemID uint) (*models.Cart, error) {
	tx := s.db.Begin()
	defer tx.Rollback()

	if _, err := s.lockOccupiedTable(tx, tableID); err != nil {
		return nil, err
	}

	item, err := s.findCartItemForTable(tx, tableID, itemID)
	if err != nil {
		return nil, err
	}

	if err := tx.Delete(item).Error; err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return s.GetCart(tableID)
}

// ClearCart drops the table's cart and all of its lines.
func (s *CartService) ClearCart(tableID uint) error {
	tx := s.db.Begin()
	defer tx.Rollback()

	if err := s.clearCartTx(tx, tableID); err != nil {
		return err
	}
	return tx.Commit().Error
}

func (s *CartService) clearCartTx(tx *gorm.DB, tableID uint) error {
	var cart models.Cart
	err := tx.Where("table_id = ?", tableID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&cart).Error
}

// GetCart returns the table's cart with its lines, or an empty cart when
// nothing has been added yet.
func (s *CartService) GetCart(tableID uint) (*models.Cart, error) {
	var table models.Table
	err := s.db.Where("id = ? AND is_active = ?", tableID, true).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("table")
		}
		return nil, err
	}

	var cart models.Cart
	err = s.db.Preload("CartItems").Preload("CartItems.Menu").Where("table_id = ?", tableID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{TableID: tableID, CartItems: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CartTotal computes the current basket total for the table.
func (s *CartService) CartTotal(tableID uint) (float64, error) {
	cart, err := s.GetCart(tableID)
	if err != nil {
		return 0, err
	}
	return cart.TotalAmount(), nil
}

// CleanupEmptyCarts removes carts whose lines are all gone. Safe to run
// alongside cart mutation since it only touches already-empty carts.
func (s *CartService) CleanupEmptyCarts() error {
	return s.db.Exec(
		"DELETE FROM carts WHERE id NOT IN (SELECT DISTINCT cart_id FROM cart_items)",
	).Error
}

func (s *CartService) lockOccupiedTable(tx *gorm.DB, tableID uint) (*models.Table, error) {
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
	return &table, nil
}

func (s *CartService) findCartItemForTable(tx *gorm.DB, tableID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := tx.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("cart item")
		}
		return nil, err
	}

	var cart models.Cart
	if err := tx.First(&cart, item.CartID).Error; err != nil {
		return nil, err
	}
	if cart.TableID != tableID {
		return nil, utils.NewConflict("cart item does not belong to table %d", tableID)
	}
	return &item, nil
}

func (s *CartService) getOrCreateCart(tx *gorm.DB, tableID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("table_id = ?", tableID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{TableID: tableID}
	if err := tx.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
