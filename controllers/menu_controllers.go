package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

// GetAvailableMenus -> customer-facing catalog
func (mc *MenuController) GetAvailableMenus(c *gin.Context) {
	menus, err := mc.Menus.ListAvailableMenus()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetAllMenus -> admin catalog including unavailable items
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Menus.ListAllMenus()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenusByCategory -> available menus inside one category
func (mc *MenuController) GetMenusByCategory(c *gin.Context) {
	menus, err := mc.Menus.ListMenusByCategory(paramUint(c, "category_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// SearchMenus -> keyword search over available menus
func (mc *MenuController) SearchMenus(c *gin.Context) {
	menus, err := mc.Menus.SearchMenus(c.Query("keyword"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Search results", menus)
}

// GetMenuByID -> detail of one menu
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	menu, err := mc.Menus.GetMenuByID(paramUint(c, "menu_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

type menuRequest struct {
	CategoryID    uint    `json:"category_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
}

// CreateMenu -> add a catalog item
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.CreateMenu(&models.Menu{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		IsAvailable:   true,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu -> edit a catalog item
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.UpdateMenu(paramUint(c, "menu_id"), &models.Menu{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// UpdateMenuAvailability -> toggle whether the menu can be ordered
func (mc *MenuController) UpdateMenuAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.SetMenuAvailability(paramUint(c, "menu_id"), *req.IsAvailable)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu availability updated", menu)
}

// DeleteMenu -> remove a catalog item
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID := paramUint(c, "menu_id")
	if err := mc.Menus.DeleteMenu(menuID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"id": menuID})
}

// GetAllCategories -> category list
func (mc *MenuController) GetAllCategories(c *gin.Context) {
	categories, err := mc.Menus.ListCategories()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// CreateCategory -> add a category
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, err := mc.Menus.CreateCategory(req.Name, req.Description)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// DeleteCategory -> remove an empty category
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	categoryID := paramUint(c, "category_id")
	if err := mc.Menus.DeleteCategory(categoryID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"id": categoryID})
}
