package services

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestDB opens a named in-memory SQLite database so every connection from
// the pool sees the same data, while each test stays isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.Menu{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTable(t *testing.T, db *gorm.DB, number, status string) *models.Table {
	t.Helper()

	table := models.Table{
		TableNumber: number,
		SeatCount:   4,
		QRCode:      "TABLE_" + number,
		Status:      status,
		IsActive:    true,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return &table
}

func seedMenu(t *testing.T, db *gorm.DB, name string, price float64) *models.Menu {
	t.Helper()

	category := models.MenuCategory{Name: "Coffee " + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	menu := models.Menu{
		CategoryID:    category.ID,
		Name:          name,
		Price:         price,
		IsAvailable:   true,
		StockQuantity: 100,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	return &menu
}

// stubGateway makes payment outcomes deterministic in tests.
type stubGateway struct {
	authorizeErr error
	refundErr    error
}

func (g *stubGateway) Authorize(amount float64, method string) error { return g.authorizeErr }
func (g *stubGateway) Refund(transactionID string) error             { return g.refundErr }
