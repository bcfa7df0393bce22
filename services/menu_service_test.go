package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	_, err := svc.CreateCategory("Coffee", "")
	require.NoError(t, err)

	_, err = svc.CreateCategory("Coffee", "same name again")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDeleteCategoryWithMenusRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	menu := seedMenu(t, db, "Americano", 4500)

	err := svc.DeleteCategory(menu.CategoryID)
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)

	require.NoError(t, svc.DeleteMenu(menu.ID))
	assert.NoError(t, svc.DeleteCategory(menu.CategoryID))
}

func TestCreateMenuValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	category, err := svc.CreateCategory("Coffee", "")
	require.NoError(t, err)

	// unknown category
	_, err = svc.CreateMenu(&models.Menu{CategoryID: 999, Name: "Latte", Price: 5000})
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// non-positive price
	_, err = svc.CreateMenu(&models.Menu{CategoryID: category.ID, Name: "Latte", Price: 0})
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)

	menu, err := svc.CreateMenu(&models.Menu{CategoryID: category.ID, Name: "Latte", Price: 5000, IsAvailable: true})
	require.NoError(t, err)
	assert.NotZero(t, menu.ID)
}

func TestAvailabilityFiltersCustomerCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	americano := seedMenu(t, db, "Americano", 4500)
	seedMenu(t, db, "Latte", 5000)

	_, err := svc.SetMenuAvailability(americano.ID, false)
	require.NoError(t, err)

	available, err := svc.ListAvailableMenus()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Latte", available[0].Name)

	// admin view still shows everything
	all, err := svc.ListAllMenus()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchMenusMatchesSubstring(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	seedMenu(t, db, "Iced Americano", 5000)
	seedMenu(t, db, "Hot Americano", 4500)
	seedMenu(t, db, "Matcha Latte", 6000)

	found, err := svc.SearchMenus("Americano")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := svc.SearchMenus("Espresso")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateMenuKeepsCategoryWhenUnset(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	menu := seedMenu(t, db, "Americano", 4500)

	updated, err := svc.UpdateMenu(menu.ID, &models.Menu{
		Name:          "Americano Double",
		Price:         5500,
		StockQuantity: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, "Americano Double", updated.Name)
	assert.Equal(t, 5500.0, updated.Price)
	assert.Equal(t, menu.CategoryID, updated.CategoryID)
}

func TestDeleteUnknownMenu(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	err := svc.DeleteMenu(999)
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
