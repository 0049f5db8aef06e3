package models

import (
	"math"
	"time"
)

// Fixed rates applied to the cart subtotal.
const (
	VATRate           = 0.05
	ServiceChargeRate = 0.10
)

// Round2 rounds a money amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Totals is the price breakdown of the cart at a point in time.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	VAT           float64 `json:"vat"`
	ServiceCharge float64 `json:"serviceCharge"`
	Total         float64 `json:"total"`
}

// Order is one finalized order as it sits in the history. Never mutated
// after creation.
type Order struct {
	ID            int64      `json:"id"`
	CustomerName  string     `json:"customerName"`
	TableNumber   string     `json:"tableNumber"`
	Items         []CartLine `json:"items"`
	Date          time.Time  `json:"date"`
	Subtotal      float64    `json:"subtotal"`
	VAT           float64    `json:"vat"`
	ServiceCharge float64    `json:"serviceCharge"`
	Total         float64    `json:"total"`
}

// InvoiceTotal is the amount printed on the receipt: subtotal plus VAT only.
// The stored order total additionally carries the 10% service charge; the
// printed receipt has never included it. Both figures are kept on purpose.
func (o Order) InvoiceTotal() float64 {
	return Round2(o.Subtotal + o.VAT)
}

// Summary aggregates a filtered slice of the order history.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}
