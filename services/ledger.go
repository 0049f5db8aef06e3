package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/models"
)

// Ledger is the append-only history of finalized orders.
type Ledger struct {
	store *database.Store
}

func NewLedger(store *database.Store) *Ledger {
	return &Ledger{store: store}
}

// Append adds one order to the persisted history. The read-append-write
// runs inside a single store transaction, so concurrent appends cannot
// lose each other.
func (s *Ledger) Append(order models.Order) error {
	return s.store.Update(database.KeyOrderHistory, func(old []byte) ([]byte, error) {
		var orders []models.Order
		if len(old) > 0 {
			if err := json.Unmarshal(old, &orders); err != nil {
				return nil, &models.StorageError{Op: "decode", Key: database.KeyOrderHistory, Err: err}
			}
		}
		orders = append(orders, order)
		return json.Marshal(orders)
	})
}

// ListAll returns the history newest-first.
func (s *Ledger) ListAll() ([]models.Order, error) {
	raw, err := s.store.Get(database.KeyOrderHistory)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, &models.StorageError{Op: "decode", Key: database.KeyOrderHistory, Err: err}
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

// FindByID returns one order from the history, nil when absent.
func (s *Ledger) FindByID(id int64) (*models.Order, error) {
	orders, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// Filter narrows the history by a free-text term and an optional date
// window. The term matches case-insensitively against the customer name,
// the table number and the order id; an empty term matches everything.
// The date window applies only when both bounds are set and keeps orders
// strictly after from and strictly before to plus one day, so the end
// date is inclusive through end of day.
func (s *Ledger) Filter(term string, from, to *time.Time) ([]models.Order, error) {
	orders, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" && !matchesTerm(o, term) {
			continue
		}
		if from != nil && to != nil {
			if !o.Date.After(*from) || !o.Date.Before(to.Add(24*time.Hour)) {
				continue
			}
		}
		result = append(result, o)
	}
	return result, nil
}

func matchesTerm(o models.Order, term string) bool {
	return strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(strings.ToLower(o.TableNumber), term) ||
		strings.Contains(strconv.FormatInt(o.ID, 10), term)
}

// Summarize totals a filtered slice of the history.
func (s *Ledger) Summarize(orders []models.Order) models.Summary {
	var sum models.Summary
	for _, o := range orders {
		sum.Subtotal += o.Subtotal
		sum.VAT += o.VAT
		sum.Total += o.Total
		sum.Count++
	}
	sum.Subtotal = models.Round2(sum.Subtotal)
	sum.VAT = models.Round2(sum.VAT)
	sum.Total = models.Round2(sum.Total)
	return sum
}
