package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"

	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/models"
)

// Catalog owns the list of purchasable menu items.
type Catalog struct {
	store *database.Store
	ids   *snowflake.Node
}

func NewCatalog(store *database.Store, ids *snowflake.Node) *Catalog {
	return &Catalog{store: store, ids: ids}
}

// ListAll returns the catalog in insertion order.
func (s *Catalog) ListAll() ([]models.MenuItem, error) {
	raw, err := s.store.Get(database.KeyMenuItems)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.MenuItem{}, nil
	}
	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &models.StorageError{Op: "decode", Key: database.KeyMenuItems, Err: err}
	}
	return items, nil
}

// FilterByCategory returns the items in one category. The sentinel "All"
// (or an empty category) returns the full catalog.
func (s *Catalog) FilterByCategory(category string) ([]models.MenuItem, error) {
	items, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	if category == "" || category == models.CategoryAll {
		return items, nil
	}
	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// FindByID looks an item up in the catalog, nil when absent.
func (s *Catalog) FindByID(id int64) (*models.MenuItem, error) {
	items, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// AddItem validates the product form, assigns an id and appends the item to
// the catalog. A failed validation writes nothing.
func (s *Catalog) AddItem(draft models.ProductDraft) (models.MenuItem, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		fields["name"] = "Product name is required"
	}

	var price float64
	if strings.TrimSpace(draft.Price) == "" {
		fields["price"] = "Price is required"
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
			fields["price"] = "Please enter a valid price"
		} else {
			price = parsed
		}
	}

	if draft.Category == "" {
		fields["category"] = "Category is required"
	} else if !models.ValidCategory(draft.Category) {
		fields["category"] = "Please select a valid category"
	}

	if strings.TrimSpace(draft.Description) == "" {
		fields["description"] = "Description is required"
	} else if utf8.RuneCountInString(draft.Description) < 10 {
		fields["description"] = "Description must be at least 10 characters"
	}

	if draft.Image == "" {
		fields["image"] = "Image is required"
	}

	if len(fields) > 0 {
		return models.MenuItem{}, &models.ValidationError{Fields: fields}
	}

	item := models.MenuItem{
		ID:          s.ids.Generate().Int64(),
		Name:        name,
		Price:       price,
		Category:    draft.Category,
		Description: draft.Description,
		Image:       draft.Image,
	}

	err := s.store.Update(database.KeyMenuItems, func(old []byte) ([]byte, error) {
		var items []models.MenuItem
		if len(old) > 0 {
			if err := json.Unmarshal(old, &items); err != nil {
				return nil, &models.StorageError{Op: "decode", Key: database.KeyMenuItems, Err: err}
			}
		}
		items = append(items, item)
		return json.Marshal(items)
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
