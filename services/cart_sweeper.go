package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/utils"
)

// CartSweeper periodically deletes carts whose items are all gone. The sweep
// only targets already-empty carts, so it is safe next to live cart mutation.
type CartSweeper struct {
	DB       *gorm.DB
	Interval time.Duration
	StopChan chan struct{}
}

func NewCartSweeper(db *gorm.DB) *CartSweeper {
	return &CartSweeper{
		DB:       db,
		Interval: 10 * time.Minute,
		StopChan: make(chan struct{}),
	}
}

func (cs *CartSweeper) Start() {
	go func() {
		ticker := time.NewTicker(cs.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cs.sweep()
			case <-cs.StopChan:
				return
			}
		}
	}()
}

func (cs *CartSweeper) Stop() {
	close(cs.StopChan)
}

func (cs *CartSweeper) sweep() {
	result := cs.DB.Exec("DELETE FROM carts WHERE id NOT IN (SELECT DISTINCT cart_id FROM cart_items)")
	if result.Error != nil {
		utils.ErrorLogger.Printf("Cart sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		utils.InfoLogger.Printf("Swept %d empty carts", result.RowsAffected)
	}
}
