package models

import (
	"time"

	"github.com/adrianhartanto/cafe-order-app/utils"
)

// Table status values
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableMaintenance = "maintenance"
)

type Table struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	TableNumber         string    `gorm:"type:varchar(50);unique;not null" json:"table_number"`
	SeatCount           int       `gorm:"not null" json:"seat_count"`
	QRCode              string    `gorm:"type:varchar(100);unique;not null" json:"qr_code"`
	LocationDescription string    `gorm:"type:varchar(200)" json:"location_description"`
	Status              string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	IsActive            bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

// Occupy marks the table as in use. Only an available table can be occupied.
func (t *Table) Occupy() error {
	if t.Status != TableAvailable {
		return utils.NewInvalidState("table", t.Status, TableOccupied)
	}
	t.Status = TableOccupied
	return nil
}

// MakeAvailable frees the table regardless of its current status.
func (t *Table) MakeAvailable() {
	t.Status = TableAvailable
}

// SetMaintenance takes the table out of service regardless of its current status.
func (t *Table) SetMaintenance() {
	t.Status = TableMaintenance
}

func (t *Table) IsAvailable() bool {
	return t.IsActive && t.Status == TableAvailable
}

func (t *Table) IsOccupied() bool {
	return t.Status == TableOccupied
}
