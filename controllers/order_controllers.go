package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> snapshot the table's cart into a pending order
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	// body is optional, an empty order note is fine
	_ = c.ShouldBindJSON(&req)

	order, err := oc.Orders.CreateOrderFromCart(paramUint(c, "table_id"), req.Notes)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.GetOrder(paramUint(c, "order_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetActiveOrdersByTable -> in-flight orders for one table
func (oc *OrderController) GetActiveOrdersByTable(c *gin.Context) {
	orders, err := oc.Orders.ActiveOrdersByTable(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active orders", orders)
}

// GetAllOrders -> admin listing, optional ?status= filter
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Query("status"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> advance the order along its status machine
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateOrderStatus(paramUint(c, "order_id"), req.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder -> customer cancel, only while pending
func (oc *OrderController) CancelOrder(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CancelOrder(paramUint(c, "order_id"), req.Reason)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// GetTodayStats -> today's order volume and revenue
func (oc *OrderController) GetTodayStats(c *gin.Context) {
	total, completed, revenue := oc.Orders.TodayStats()
	utils.RespondJSON(c, http.StatusOK, "Today's order stats", gin.H{
		"total_orders":     total,
		"completed_orders": completed,
		"revenue":          revenue,
		"summary":          fmt.Sprintf("orders: %d, completed: %d, revenue: %.2f", total, completed, revenue),
	})
}

// GetStatusCounts -> per-status order counts for the dashboard
func (oc *OrderController) GetStatusCounts(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order status counts", oc.Orders.StatusCounts())
}
