package models

// CategoryAll is the filter sentinel used by the menu screen. It is not a
// category a product can belong to.
const CategoryAll = "All"

// Categories is the fixed set of menu categories shown on the POS.
var Categories = []string{"Main Course", "Appetizers", "Beverages", "Desserts"}

// ValidCategory reports whether name is one of the fixed menu categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// ProductDraft is the raw product form input. Price is kept as the string
// the user typed so validation can tell "missing" apart from "not a number".
type ProductDraft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
