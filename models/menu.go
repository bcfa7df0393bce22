package models

import "time"

type Menu struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CategoryID    uint         `gorm:"not null" json:"category_id"`
	Category      MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name          string       `gorm:"type:varchar(100);not null" json:"name"`
	Description   string       `gorm:"type:varchar(500)" json:"description"`
	Price         float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL      string       `gorm:"type:varchar(255)" json:"image_url"`
	IsAvailable   bool         `gorm:"not null;default:true" json:"is_available"`
	StockQuantity int          `gorm:"not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}
