package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

func TestCreateTableIssuesQRCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)

	table, err := svc.CreateTable("A1", 4, "window side")
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, table.Status)
	assert.True(t, strings.HasPrefix(table.QRCode, "TABLE_"))
	assert.Len(t, table.QRCode, len("TABLE_")+12)
}

func TestCreateTableDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)

	_, err := svc.CreateTable("A1", 4, "")
	require.NoError(t, err)

	_, err = svc.CreateTable("A1", 2, "")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestScanOccupiesAvailableTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableAvailable)

	scanned, err := svc.ScanQRCode(table.QRCode)
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, scanned.Status)

	// Scanning again is a no-op for an occupied table
	scanned, err = svc.ScanQRCode(table.QRCode)
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, scanned.Status)
}

func TestScanMaintenanceTableRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableMaintenance)

	_, err := svc.ScanQRCode(table.QRCode)
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestScanUnknownQRCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)

	_, err := svc.ScanQRCode("TABLE_DOESNOTEXIST")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestOccupyFromMaintenanceIsInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableMaintenance)

	_, err := svc.UpdateTableStatus(table.ID, models.TableOccupied)
	var invalid *utils.InvalidStateError
	assert.ErrorAs(t, err, &invalid)

	// status untouched after the failed transition
	fresh, err := svc.GetTableByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableMaintenance, fresh.Status)
}

func TestMakeAvailableIsUnconditional(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableMaintenance)

	updated, err := svc.UpdateTableStatus(table.ID, models.TableAvailable)
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, updated.Status)
}

func TestDeleteOccupiedTableRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)

	err := svc.DeleteTable(table.ID)
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDeleteTableIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableAvailable)

	require.NoError(t, svc.DeleteTable(table.ID))

	_, err := svc.GetTableByID(table.ID)
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// row still exists, only deactivated
	var raw models.Table
	require.NoError(t, db.First(&raw, table.ID).Error)
	assert.False(t, raw.IsActive)
}

func TestRegenerateQRCodeChangesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	table := seedTable(t, db, "A1", models.TableAvailable)
	oldCode := table.QRCode

	updated, err := svc.RegenerateQRCode(table.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldCode, updated.QRCode)
}

func TestTableStatusCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewTableService(db)
	seedTable(t, db, "A1", models.TableAvailable)
	seedTable(t, db, "A2", models.TableOccupied)
	seedTable(t, db, "A3", models.TableOccupied)

	counts := svc.StatusCounts()
	assert.Equal(t, int64(1), counts[models.TableAvailable])
	assert.Equal(t, int64(2), counts[models.TableOccupied])
	assert.Equal(t, int64(3), counts["total"])
}
