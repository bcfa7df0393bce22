package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// MenuService manages the catalog: categories and menu items.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) CreateCategory(name, description string) (*models.MenuCategory, error) {
	var count int64
	s.db.Model(&models.MenuCategory{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		return nil, utils.NewConflict("category %s already exists", name)
	}

	category := models.MenuCategory{Name: name, Description: description}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MenuService) ListCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MenuService) DeleteCategory(categoryID uint) error {
	var count int64
	s.db.Model(&models.Menu{}).Where("category_id = ?", categoryID).Count(&count)
	if count > 0 {
		return utils.NewConflict("category still has %d menus", count)
	}

	result := s.db.Delete(&models.MenuCategory{}, categoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFound("category")
	}
	return nil
}

func (s *MenuService) CreateMenu(menu *models.Menu) (*models.Menu, error) {
	var category models.MenuCategory
	if err := s.db.First(&category, menu.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("category")
		}
		return nil, err
	}

	if menu.Price <= 0 {
		return nil, utils.NewConflict("menu price must be positive")
	}

	if err := s.db.Create(menu).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Menu created: %s (price=%.2f)", menu.Name, menu.Price)
	return menu, nil
}

func (s *MenuService) GetMenuByID(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.Preload("Category").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu")
		}
		return nil, err
	}
	return &menu, nil
}

// ListAvailableMenus is the customer-facing catalog view.
func (s *MenuService) ListAvailableMenus() ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.Preload("Category").Where("is_available = ?", true).Order("name").Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// ListAllMenus includes unavailable items, for the admin screens.
func (s *MenuService) ListAllMenus() ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Preload("Category").Order("name").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) ListMenusByCategory(categoryID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.Preload("Category").
		Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("name").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) SearchMenus(keyword string) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.Preload("Category").
		Where("is_available = ? AND name LIKE ?", true, "%"+keyword+"%").
		Order("name").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) UpdateMenu(menuID uint, update *models.Menu) (*models.Menu, error) {
	menu, err := s.GetMenuByID(menuID)
	if err != nil {
		return nil, err
	}

	if update.Price <= 0 {
		return nil, utils.NewConflict("menu price must be positive")
	}

	menu.Name = update.Name
	menu.Description = update.Description
	menu.Price = update.Price
	menu.ImageURL = update.ImageURL
	menu.StockQuantity = update.StockQuantity
	if update.CategoryID != 0 {
		menu.CategoryID = update.CategoryID
	}

	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

// SetMenuAvailability toggles whether the menu can be added to carts.
func (s *MenuService) SetMenuAvailability(menuID uint, available bool) (*models.Menu, error) {
	menu, err := s.GetMenuByID(menuID)
	if err != nil {
		return nil, err
	}

	menu.IsAvailable = available
	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Menu %s availability set to %v", menu.Name, available)
	return menu, nil
}

func (s *MenuService) DeleteMenu(menuID uint) error {
	result := s.db.Delete(&models.Menu{}, menuID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFound("menu")
	}
	return nil
}
