package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type paymentRequest struct {
	OrderID uint    `json:"order_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

// ProcessCardPayment -> authorize through the gateway
func (pc *PaymentController) ProcessCardPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.ProcessCardPayment(req.OrderID, req.Amount)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment completed", payment)
}

// ProcessCashPayment -> settle immediately at the counter
func (pc *PaymentController) ProcessCashPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.ProcessCashPayment(req.OrderID, req.Amount)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment completed", payment)
}

// GetPayment -> detail of one payment
func (pc *PaymentController) GetPayment(c *gin.Context) {
	payment, err := pc.Payments.GetPayment(paramUint(c, "payment_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// GetPaymentByOrder -> the payment attached to an order
func (pc *PaymentController) GetPaymentByOrder(c *gin.Context) {
	payment, err := pc.Payments.GetPaymentByOrder(paramUint(c, "order_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// RefundPayment -> reverse a completed payment, cancels the order
func (pc *PaymentController) RefundPayment(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.RefundPayment(paramUint(c, "payment_id"), req.Reason)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment refunded", payment)
}

// GetTodayStats -> today's completed payment count and volume
func (pc *PaymentController) GetTodayStats(c *gin.Context) {
	count, total := pc.Payments.TodayStats()
	utils.RespondJSON(c, http.StatusOK, "Today's payment stats", gin.H{
		"count":   count,
		"total":   total,
		"summary": fmt.Sprintf("payments: %d, total: %.2f", count, total),
	})
}
