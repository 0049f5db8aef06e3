package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/events"
	"github.com/yeremiapane/restaurant-pos/models"
)

func newTestCart(t *testing.T) (*Cart, *Ledger, *events.Bus, *database.Store) {
	t.Helper()
	store := newTestStore(t)
	ids, err := NewIDNode(2)
	require.NoError(t, err)
	bus := events.NewBus()
	ledger := NewLedger(store)
	return NewCart(ledger, ids, bus), ledger, bus, store
}

func menuItem(id int64, name string, price float64) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    "Main Course",
		Description: "A dish from the test kitchen",
		Image:       "https://example.com/dish.jpg",
	}
}

func TestCartRepeatAddBumpsQuantity(t *testing.T) {
	cart, _, _, _ := newTestCart(t)

	item := menuItem(7, "Falafel Plate", 18)
	cart.AddItem(item)
	cart.AddItem(item)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(7), lines[0].Item.ID)

	// n adds of the same id -> one line with quantity n
	for i := 0; i < 5; i++ {
		cart.AddItem(item)
	}
	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestCartAdjustQuantityClampsAtOne(t *testing.T) {
	cart, _, _, _ := newTestCart(t)
	cart.AddItem(menuItem(1, "Hummus", 10))

	cart.AdjustQuantity(1, 4)
	assert.Equal(t, 5, cart.Lines()[0].Quantity)

	cart.AdjustQuantity(1, -3)
	assert.Equal(t, 2, cart.Lines()[0].Quantity)

	cart.AdjustQuantity(1, -100)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	// Unknown id is a no-op
	cart.AdjustQuantity(99, 3)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	cart, _, _, _ := newTestCart(t)
	cart.AddItem(menuItem(1, "Hummus", 10))
	cart.AddItem(menuItem(2, "Baklava", 12))

	cart.RemoveItem(1)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Item.ID)

	// Removing an absent id fails silently
	cart.RemoveItem(42)
	assert.Len(t, cart.Lines(), 1)
}

func TestCartNotifications(t *testing.T) {
	cart, _, bus, _ := newTestCart(t)

	var added, removed []events.CartEvent
	require.NoError(t, bus.SubscribeItemAdded(func(ev events.CartEvent) { added = append(added, ev) }))
	require.NoError(t, bus.SubscribeItemRemoved(func(ev events.CartEvent) { removed = append(removed, ev) }))

	item := menuItem(3, "Beef Shawarma", 15)
	cart.AddItem(item)
	cart.AddItem(item)
	cart.RemoveItem(3)
	cart.RemoveItem(3) // already gone, no event

	// exactly one notification per successful add and per successful remove
	require.Len(t, added, 2)
	assert.Equal(t, "Beef Shawarma", added[0].Name)
	assert.Equal(t, 1, added[0].Quantity)
	assert.Equal(t, 2, added[1].Quantity)
	require.Len(t, removed, 1)
	assert.Equal(t, 2, removed[0].Quantity)
}

func TestCartComputeTotals(t *testing.T) {
	cart, _, _, _ := newTestCart(t)

	soup := menuItem(1, "Soup", 10)
	cart.AddItem(soup)
	cart.AddItem(soup)
	cart.AddItem(menuItem(2, "Bread", 5))

	totals := cart.ComputeTotals()
	assert.Equal(t, 25.00, totals.Subtotal)
	assert.Equal(t, 1.25, totals.VAT)
	assert.Equal(t, 2.50, totals.ServiceCharge)
	assert.Equal(t, 28.75, totals.Total)

	// Pure: a second call without mutation yields the same result
	assert.Equal(t, totals, cart.ComputeTotals())
}

func TestCartSaveEmptyFails(t *testing.T) {
	cart, ledger, _, _ := newTestCart(t)

	_, err := cart.Save()
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	orders, err := ledger.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCartSaveAppendsAndClears(t *testing.T) {
	cart, ledger, bus, _ := newTestCart(t)

	var saved []models.Order
	require.NoError(t, bus.SubscribeOrderSaved(func(o models.Order) { saved = append(saved, o) }))

	soup := menuItem(1, "Soup", 10)
	cart.AddItem(soup)
	cart.AddItem(soup)
	cart.AddItem(menuItem(2, "Bread", 5))
	cart.SetCustomer("Amira", "12")

	wantTotals := cart.ComputeTotals()
	order, err := cart.Save()
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, "Amira", order.CustomerName)
	assert.Equal(t, "12", order.TableNumber)
	assert.Equal(t, wantTotals.Subtotal, order.Subtotal)
	assert.Equal(t, wantTotals.VAT, order.VAT)
	assert.Equal(t, wantTotals.ServiceCharge, order.ServiceCharge)
	assert.Equal(t, wantTotals.Total, order.Total)
	require.Len(t, order.Items, 2)
	assert.WithinDuration(t, time.Now().UTC(), order.Date, 5*time.Second)

	// Cart fully cleared after a successful save
	assert.Empty(t, cart.Lines())
	assert.Equal(t, models.Totals{}, cart.ComputeTotals())

	// Exactly one order landed in the ledger
	orders, err := ledger.ListAll()
	assert.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	require.Len(t, saved, 1)
	assert.Equal(t, order.ID, saved[0].ID)
}

func TestCartSaveDefaultsCustomerAndTable(t *testing.T) {
	cart, _, _, _ := newTestCart(t)
	cart.AddItem(menuItem(1, "Hummus", 10))
	cart.SetCustomer("  ", "")

	order, err := cart.Save()
	require.NoError(t, err)
	assert.Equal(t, DefaultCustomerName, order.CustomerName)
	assert.Equal(t, DefaultTableNumber, order.TableNumber)
}

func TestCartSaveStorageFailureLeavesCartIntact(t *testing.T) {
	cart, _, _, store := newTestCart(t)
	cart.AddItem(menuItem(1, "Hummus", 10))
	cart.AddItem(menuItem(2, "Baklava", 12))
	cart.SetCustomer("Omar", "4")

	// Force the append to fail
	require.NoError(t, store.Close())

	_, err := cart.Save()
	require.Error(t, err)
	var se *models.StorageError
	assert.ErrorAs(t, err, &se)

	// The cart was not cleared: the cashier keeps everything and can retry
	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, int64(2), lines[1].Item.ID)
	assert.Equal(t, 25.30, cart.ComputeTotals().Total)
}
