package models

import "encoding/json"

// CartLine is one menu item plus quantity inside the order being built.
// The item is a snapshot: later catalog edits do not touch saved orders.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// The wire shape flattens the item fields next to quantity, the same layout
// the order history has always been stored in.
type cartLineJSON struct {
	MenuItem
	Quantity int `json:"quantity"`
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartLineJSON{MenuItem: l.Item, Quantity: l.Quantity})
}

func (l *CartLine) UnmarshalJSON(data []byte) error {
	var raw cartLineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Item = raw.MenuItem
	l.Quantity = raw.Quantity
	return nil
}

// Amount -> line price times quantity.
func (l CartLine) Amount() float64 {
	return l.Item.Price * float64(l.Quantity)
}
