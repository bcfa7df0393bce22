package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GetCart -> the table's current basket
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.Carts.GetCart(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart detail", cart)
}

// AddItem -> merge-or-append a menu line
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID   uint   `json:"menu_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.Carts.AddItem(paramUint(c, "table_id"), req.MenuID, req.Quantity, req.Notes)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cart)
}

// UpdateItemQuantity -> change a line's quantity
func (cc *CartController) UpdateItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.Carts.UpdateItemQuantity(paramUint(c, "table_id"), paramUint(c, "item_id"), req.Quantity)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart item updated", cart)
}

// RemoveItem -> drop one line
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.Carts.RemoveItem(paramUint(c, "table_id"), paramUint(c, "item_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart item removed", cart)
}

// ClearCart -> drop the whole basket
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.Carts.ClearCart(paramUint(c, "table_id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}

// GetCartTotal -> just the basket total
func (cc *CartController) GetCartTotal(c *gin.Context) {
	total, err := cc.Carts.CartTotal(paramUint(c, "table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart total", gin.H{"total_amount": total})
}
