package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type MenuController struct {
	Catalog *services.Catalog
}

func NewMenuController(catalog *services.Catalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllMenus -> list menus, optionally narrowed by ?category=
// The sentinel category "All" returns everything.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Catalog.FilterByCategory(c.Query("category"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", items)
}

// GetCategories -> the fixed category set, with the "All" filter sentinel
// prepended for the menu screen chips.
func (mc *MenuController) GetCategories(c *gin.Context) {
	categories := append([]string{models.CategoryAll}, models.Categories...)
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// CreateProduct -> validate the product form and append it to the catalog
func (mc *MenuController) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.AddItem(draft)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			utils.RespondFieldErrors(c, http.StatusBadRequest, ve.Fields)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", item)
}
