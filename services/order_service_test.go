package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

func TestCreateOrderFromCartSnapshotsAndClears(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	americano := seedMenu(t, db, "Americano", 4500)
	latte := seedMenu(t, db, "Latte", 5000)

	_, err := carts.AddItem(table.ID, americano.ID, 3, "")
	require.NoError(t, err)
	cart, err := carts.AddItem(table.ID, latte.ID, 1, "oat milk")
	require.NoError(t, err)
	cartTotal := cart.TotalAmount()

	order, err := orders.CreateOrderFromCart(table.ID, "no cutlery")
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, cartTotal, order.TotalAmount)
	assert.Equal(t, cartTotal, order.PaymentAmount)
	require.Len(t, order.OrderItems, 2)

	// the cart is gone after the snapshot
	afterCart, err := carts.GetCart(table.ID)
	require.NoError(t, err)
	assert.True(t, afterCart.IsEmpty())
}

func TestCreateOrderPriceChangesDoNotLeakIn(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	menu := seedMenu(t, db, "Americano", 4500)

	_, err := carts.AddItem(table.ID, menu.ID, 2, "")
	require.NoError(t, err)
	require.NoError(t, db.Model(menu).Update("price", 9999).Error)

	order, err := orders.CreateOrderFromCart(table.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 9000.0, order.TotalAmount)
	assert.Equal(t, 4500.0, order.OrderItems[0].UnitPrice)
}

func TestCreateOrderEmptyCartRejected(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)

	_, err := orders.CreateOrderFromCart(table.ID, "")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderTableNotOccupied(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableAvailable)

	_, err := orders.CreateOrderFromCart(table.ID, "")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestOrderStatusForwardChain(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	menu := seedMenu(t, db, "Americano", 4500)

	_, err := carts.AddItem(table.ID, menu.ID, 1, "")
	require.NoError(t, err)
	order, err := orders.CreateOrderFromCart(table.ID, "")
	require.NoError(t, err)

	order, err = orders.UpdateOrderStatus(order.ID, models.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, order.Status)

	order, err = orders.UpdateOrderStatus(order.ID, models.OrderReady)
	require.NoError(t, err)
	assert.Equal(t, models.OrderReady, order.Status)

	order, err = orders.UpdateOrderStatus(order.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, order.Status)

	// completion frees the table
	var freed models.Table
	require.NoError(t, db.First(&freed, table.ID).Error)
	assert.Equal(t, models.TableAvailable, freed.Status)
}

func TestOrderIllegalEdgesRejected(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	menu := seedMenu(t, db, "Americano", 4500)

	_, err := carts.AddItem(table.ID, menu.ID, 1, "")
	require.NoError(t, err)
	order, err := orders.CreateOrderFromCart(table.ID, "")
	require.NoError(t, err)

	// pending cannot jump straight to ready or completed
	var invalid *utils.InvalidStateError
	_, err = orders.UpdateOrderStatus(order.ID, models.OrderReady)
	assert.ErrorAs(t, err, &invalid)
	_, err = orders.UpdateOrderStatus(order.ID, models.OrderCompleted)
	assert.ErrorAs(t, err, &invalid)

	// failed transitions leave the status untouched
	fresh, err := orders.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, fresh.Status)
}

func TestCancelOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	menu := seedMenu(t, db, "Americano", 4500)

	_, err := carts.AddItem(table.ID, menu.ID, 1, "")
	require.NoError(t, err)
	order, err := orders.CreateOrderFromCart(table.ID, "extra hot")
	require.NoError(t, err)

	cancelled, err := orders.CancelOrder(order.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Contains(t, cancelled.OrderNotes, "changed my mind")
	assert.Contains(t, cancelled.OrderNotes, "extra hot")

	// cancelling again is rejected
	_, err = orders.CancelOrder(order.ID, "again")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestCancelPreparingOrderRejected(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	table := seedTable(t, db, "A1", models.TableOccupied)
	menu := seedMenu(t, db, "Americano", 4500)

	_, err := carts.AddItem(table.ID, menu.ID, 1, "")
	require.NoError(t, err)
	order, err := orders.CreateOrderFromCart(table.ID, "")
	require.NoError(t, err)
	_, err = orders.UpdateOrderStatus(order.ID, models.OrderPreparing)
	require.NoError(t, err)

	_, err = orders.CancelOrder(order.ID, "too late")
	var conflict *utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestListOrdersFilterAndCounts(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	orders := NewOrderService(db)
	menu := seedMenu(t, db, "Americano", 4500)

	for _, number := range []string{"A1", "A2"} {
		table := seedTable(t, db, number, models.TableOccupied)
		_, err := carts.AddItem(table.ID, menu.ID, 1, "")
		require.NoError(t, err)
		_, err = orders.CreateOrderFromCart(table.ID, "")
		require.NoError(t, err)
	}

	pending, err := orders.ListOrders(models.OrderPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	counts := orders.StatusCounts()
	assert.Equal(t, int64(2), counts[models.OrderPending])
	assert.Equal(t, int64(0), counts[models.OrderCompleted])

	total, completed, _ := orders.TodayStats()
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(0), completed)
}
