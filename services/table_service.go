package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// TableService manages the physical tables: creation with QR issuance, status
// overrides, soft deletion and the customer-facing QR scan.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// CreateTable registers a new table and issues it a unique QR token.
func (s *TableService) CreateTable(tableNumber string, seatCount int, location string) (*models.Table, error) {
	if seatCount < 1 {
		return nil, utils.NewConflict("seat count must be at least 1")
	}

	var count int64
	s.db.Model(&models.Table{}).Where("table_number = ?", tableNumber).Count(&count)
	if count > 0 {
		return nil, utils.NewConflict("table number %s already exists", tableNumber)
	}

	qrCode, err := s.generateUniqueQRCode()
	if err != nil {
		return nil, err
	}

	table := models.Table{
		TableNumber:         tableNumber,
		SeatCount:           seatCount,
		QRCode:              qrCode,
		LocationDescription: location,
		Status:              models.TableAvailable,
		IsActive:            true,
	}

	if err := s.db.Create(&table).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s created (qr=%s)", table.TableNumber, table.QRCode)
	return &table, nil
}

// UpdateTable changes the descriptive fields of a table.
func (s *TableService) UpdateTable(tableID uint, tableNumber string, seatCount int, location string) (*models.Table, error) {
	table, err := s.findActiveTable(s.db, tableID)
	if err != nil {
		return nil, err
	}

	if table.TableNumber != tableNumber {
		var count int64
		s.db.Model(&models.Table{}).Where("table_number = ? AND id <> ?", tableNumber, tableID).Count(&count)
		if count > 0 {
			return nil, utils.NewConflict("table number %s already exists", tableNumber)
		}
	}

	table.TableNumber = tableNumber
	table.SeatCount = seatCount
	table.LocationDescription = location

	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateTableStatus applies an admin status override.
func (s *TableService) UpdateTableStatus(tableID uint, status string) (*models.Table, error) {
	table, err := s.findActiveTable(s.db, tableID)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.TableAvailable:
		table.MakeAvailable()
	case models.TableOccupied:
		if err := table.Occupy(); err != nil {
			return nil, err
		}
	case models.TableMaintenance:
		table.SetMaintenance()
	default:
		return nil, utils.NewConflict("unknown table status: %s", status)
	}

	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s status changed to %s", table.TableNumber, table.Status)
	return table, nil
}

// DeleteTable soft-deletes a table. An occupied table cannot be removed.
func (s *TableService) DeleteTable(tableID uint) error {
	table, err := s.findActiveTable(s.db, tableID)
	if err != nil {
		return err
	}

	if table.IsOccupied() {
		return utils.NewConflict("table %s is occupied and cannot be deleted", table.TableNumber)
	}

	table.IsActive = false
	if err := s.db.Save(table).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %s deactivated", table.TableNumber)
	return nil
}

// ScanQRCode resolves a customer scan. Scanning an available table occupies
// it; an occupied table just returns its info so the party can keep ordering.
func (s *TableService) ScanQRCode(qrCode string) (*models.Table, error) {
	var table models.Table
	tx := s.db.Begin()
	defer tx.Rollback()

	err := lockForUpdate(tx).Where("qr_code = ? AND is_active = ?", qrCode, true).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("table")
		}
		return nil, err
	}

	if table.Status == models.TableMaintenance {
		return nil, utils.NewConflict("table %s is under maintenance", table.TableNumber)
	}

	if table.Status == models.TableAvailable {
		if err := table.Occupy(); err != nil {
			return nil, err
		}
		if err := tx.Save(&table).Error; err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s scanned (status=%s)", table.TableNumber, table.Status)
	return &table, nil
}

func (s *TableService) GetTableByID(tableID uint) (*models.Table, error) {
	return s.findActiveTable(s.db, tableID)
}

func (s *TableService) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Where("is_active = ?", true).Order("table_number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// RegenerateQRCode invalidates the previous token, e.g. after reprinting.
func (s *TableService) RegenerateQRCode(tableID uint) (*models.Table, error) {
	table, err := s.findActiveTable(s.db, tableID)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.generateUniqueQRCode()
	if err != nil {
		return nil, err
	}

	table.QRCode = qrCode
	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s QR code regenerated", table.TableNumber)
	return table, nil
}

// StatusCounts returns table counts per status for the admin dashboard.
func (s *TableService) StatusCounts() map[string]int64 {
	counts := make(map[string]int64)
	for _, status := range []string{models.TableAvailable, models.TableOccupied, models.TableMaintenance} {
		var n int64
		s.db.Model(&models.Table{}).Where("is_active = ? AND status = ?", true, status).Count(&n)
		counts[status] = n
	}
	counts["total"] = counts[models.TableAvailable] + counts[models.TableOccupied] + counts[models.TableMaintenance]
	return counts
}

func (s *TableService) findActiveTable(tx *gorm.DB, tableID uint) (*models.Table, error) {
	var table models.Table
	err := tx.Where("id = ? AND is_active = ?", tableID, true).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("table")
		}
		return nil, err
	}
	return &table, nil
}

// generateUniqueQRCode issues an opaque token, retrying on the off chance of
// a collision with an existing table.
func (s *TableService) generateUniqueQRCode() (string, error) {
	for i := 0; i < 10; i++ {
		raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		qrCode := "TABLE_" + raw[:12]

		var count int64
		if err := s.db.Model(&models.Table{}).Where("qr_code = ?", qrCode).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return qrCode, nil
		}
	}
	return "", errors.New("failed to generate a unique QR code")
}
