package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/models"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	ids, err := NewIDNode(1)
	require.NoError(t, err)
	return NewCatalog(newTestStore(t), ids)
}

func validDraft() models.ProductDraft {
	return models.ProductDraft{
		Name:        "Chicken Biryani",
		Price:       "25",
		Category:    "Main Course",
		Description: "Fragrant basmati rice with tender chicken",
		Image:       "https://example.com/biryani.jpg",
	}
}

func TestCatalogAddAndList(t *testing.T) {
	catalog := newTestCatalog(t)

	items, err := catalog.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, items)

	first, err := catalog.AddItem(validDraft())
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, 25.0, first.Price)

	second := validDraft()
	second.Name = "Mango Lassi"
	second.Price = "8"
	second.Category = "Beverages"
	added, err := catalog.AddItem(second)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, added.ID)

	// Insertion order preserved
	items, err = catalog.ListAll()
	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken Biryani", items[0].Name)
	assert.Equal(t, "Mango Lassi", items[1].Name)
}

func TestCatalogFilterByCategory(t *testing.T) {
	catalog := newTestCatalog(t)

	drinks := validDraft()
	drinks.Name = "Turkish Coffee"
	drinks.Category = "Beverages"
	_, err := catalog.AddItem(validDraft())
	require.NoError(t, err)
	_, err = catalog.AddItem(drinks)
	require.NoError(t, err)

	beverages, err := catalog.FilterByCategory("Beverages")
	assert.NoError(t, err)
	require.Len(t, beverages, 1)
	assert.Equal(t, "Turkish Coffee", beverages[0].Name)

	all, err := catalog.FilterByCategory(models.CategoryAll)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := catalog.FilterByCategory("Desserts")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogValidation(t *testing.T) {
	catalog := newTestCatalog(t)

	tests := []struct {
		name    string
		mutate  func(*models.ProductDraft)
		field   string
		message string
	}{
		{"missing name", func(d *models.ProductDraft) { d.Name = "  " }, "name", "Product name is required"},
		{"missing price", func(d *models.ProductDraft) { d.Price = "" }, "price", "Price is required"},
		{"negative price", func(d *models.ProductDraft) { d.Price = "-3" }, "price", "Please enter a valid price"},
		{"zero price", func(d *models.ProductDraft) { d.Price = "0" }, "price", "Please enter a valid price"},
		{"non-numeric price", func(d *models.ProductDraft) { d.Price = "abc" }, "price", "Please enter a valid price"},
		{"nan price", func(d *models.ProductDraft) { d.Price = "NaN" }, "price", "Please enter a valid price"},
		{"missing category", func(d *models.ProductDraft) { d.Category = "" }, "category", "Category is required"},
		{"unknown category", func(d *models.ProductDraft) { d.Category = "Specials" }, "category", "Please select a valid category"},
		{"missing description", func(d *models.ProductDraft) { d.Description = "" }, "description", "Description is required"},
		{"short description", func(d *models.ProductDraft) { d.Description = "too short" }, "description", "Description must be at least 10 characters"},
		{"missing image", func(d *models.ProductDraft) { d.Image = "" }, "image", "Image is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			_, err := catalog.AddItem(draft)
			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.message, ve.Fields[tt.field])
		})
	}

	// Failed additions must not partially apply
	items, err := catalog.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogValidationCollectsAllFields(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.AddItem(models.ProductDraft{})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 5)
}

func TestCatalogFindByID(t *testing.T) {
	catalog := newTestCatalog(t)

	added, err := catalog.AddItem(validDraft())
	require.NoError(t, err)

	found, err := catalog.FindByID(added.ID)
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, added, *found)

	missing, err := catalog.FindByID(added.ID + 1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
