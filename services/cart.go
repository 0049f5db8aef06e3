package services

import (
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/yeremiapane/restaurant-pos/events"
	"github.com/yeremiapane/restaurant-pos/models"
)

// Defaults applied when the cashier leaves the fields blank.
const (
	DefaultCustomerName = "Guest"
	DefaultTableNumber  = "Takeaway"
)

// Cart is the order currently being assembled on the POS. The POS is a
// single terminal, but gin runs handlers concurrently, so the state is
// mutex-guarded.
type Cart struct {
	mu           sync.Mutex
	lines        []models.CartLine
	customerName string
	tableNumber  string

	ledger *Ledger
	ids    *snowflake.Node
	bus    *events.Bus
}

func NewCart(ledger *Ledger, ids *snowflake.Node, bus *events.Bus) *Cart {
	return &Cart{ledger: ledger, ids: ids, bus: bus}
}

// AddItem puts a menu item in the cart. A repeat add bumps the existing
// line's quantity instead of creating a second line. Every successful add
// publishes exactly one item-added event.
func (c *Cart) AddItem(item models.MenuItem) {
	c.mu.Lock()
	var quantity int
	found := false
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			quantity = c.lines[i].Quantity
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, models.CartLine{Item: item, Quantity: 1})
		quantity = 1
	}
	c.mu.Unlock()

	c.bus.PublishItemAdded(events.CartEvent{MenuID: item.ID, Name: item.Name, Quantity: quantity})
}

// RemoveItem deletes the line for id. Removing an id that is not in the
// cart is a silent no-op and publishes nothing.
func (c *Cart) RemoveItem(id int64) {
	c.mu.Lock()
	var removed *models.CartLine
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			line := c.lines[i]
			removed = &line
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed != nil {
		c.bus.PublishItemRemoved(events.CartEvent{MenuID: id, Name: removed.Item.Name, Quantity: removed.Quantity})
	}
}

// AdjustQuantity changes a line's quantity by delta, clamped so it never
// drops below 1. Dropping a line is a separate explicit action.
func (c *Cart) AdjustQuantity(id int64, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			next := c.lines[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			c.lines[i].Quantity = next
			return
		}
	}
}

// SetCustomer records the free-text customer and table fields. No
// validation: blanks fall back to defaults at save time.
func (c *Cart) SetCustomer(name, table string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
	c.tableNumber = table
}

// Lines returns a snapshot copy of the cart lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartLine(nil), c.lines...)
}

// ComputeTotals derives the price breakdown of the current cart. Pure:
// calling it twice without mutation yields identical results.
func (c *Cart) ComputeTotals() models.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return computeTotals(c.lines)
}

func computeTotals(lines []models.CartLine) models.Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Amount()
	}
	subtotal = models.Round2(subtotal)
	vat := models.Round2(subtotal * models.VATRate)
	serviceCharge := models.Round2(subtotal * models.ServiceChargeRate)
	return models.Totals{
		Subtotal:      subtotal,
		VAT:           vat,
		ServiceCharge: serviceCharge,
		Total:         models.Round2(subtotal + vat + serviceCharge),
	}
}

// Save snapshots the cart into an immutable order, appends it to the
// ledger and clears the cart. On a storage failure nothing is cleared: the
// cashier keeps the cart and can retry.
func (c *Cart) Save() (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return models.Order{}, models.ErrEmptyCart
	}

	totals := computeTotals(c.lines)
	name := strings.TrimSpace(c.customerName)
	if name == "" {
		name = DefaultCustomerName
	}
	table := strings.TrimSpace(c.tableNumber)
	if table == "" {
		table = DefaultTableNumber
	}

	order := models.Order{
		ID:            c.ids.Generate().Int64(),
		CustomerName:  name,
		TableNumber:   table,
		Items:         append([]models.CartLine(nil), c.lines...),
		Date:          time.Now().UTC(),
		Subtotal:      totals.Subtotal,
		VAT:           totals.VAT,
		ServiceCharge: totals.ServiceCharge,
		Total:         totals.Total,
	}

	if err := c.ledger.Append(order); err != nil {
		return models.Order{}, err
	}

	c.lines = nil
	c.customerName = ""
	c.tableNumber = ""

	c.bus.PublishOrderSaved(order)
	return order, nil
}
