package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// CreateTable -> register a new table with an auto-issued QR token
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber         string `json:"table_number" binding:"required"`
		SeatCount           int    `json:"seat_count" binding:"required"`
		LocationDescription string `json:"location_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.CreateTable(req.TableNumber, req.SeatCount, req.LocationDescription)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> list all active tables
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.ListTables()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.Tables.GetTableByID(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> change the descriptive fields
func (tc *TableController) UpdateTable(c *gin.Context) {
	var req struct {
		TableNumber         string `json:"table_number" binding:"required"`
		SeatCount           int    `json:"seat_count" binding:"required"`
		LocationDescription string `json:"location_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.UpdateTable(paramUint(c, "table_id"), req.TableNumber, req.SeatCount, req.LocationDescription)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> admin status override
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.UpdateTableStatus(paramUint(c, "table_id"), req.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> soft delete, blocked while occupied
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := paramUint(c, "table_id")
	if err := tc.Tables.DeleteTable(tableID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}

// ScanTable -> customer entry point: resolves a QR token and occupies the table
func (tc *TableController) ScanTable(c *gin.Context) {
	table, err := tc.Tables.ScanQRCode(c.Param("qr_code"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table scanned", gin.H{
		"table_id":             table.ID,
		"table_number":         table.TableNumber,
		"seat_count":           table.SeatCount,
		"location_description": table.LocationDescription,
		"status":               table.Status,
	})
}

// RegenerateQRCode -> issue a fresh QR token for the table
func (tc *TableController) RegenerateQRCode(c *gin.Context) {
	table, err := tc.Tables.RegenerateQRCode(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "QR code regenerated", gin.H{
		"table_id": table.ID,
		"qr_code":  table.QRCode,
	})
}

// GetTableQRCodeImage -> render the QR token as a printable PNG
func (tc *TableController) GetTableQRCodeImage(c *gin.Context) {
	table, err := tc.Tables.GetTableByID(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := utils.RenderQRCode(table.QRCode, size)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetTableStats -> table counts per status for the dashboard
func (tc *TableController) GetTableStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Table stats", tc.Tables.StatusCounts())
}

// paramUint parses a numeric path parameter; bad input yields 0 which the
// services report as not found.
func paramUint(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id)
}
