package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type CartController struct {
	Cart    *services.Cart
	Catalog *services.Catalog
}

func NewCartController(cart *services.Cart, catalog *services.Catalog) *CartController {
	return &CartController{Cart: cart, Catalog: catalog}
}

// GetCart -> current lines plus the derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current order", gin.H{
		"items":  cc.Cart.Lines(),
		"totals": cc.Cart.ComputeTotals(),
	})
}

// AddItem -> put one menu item in the cart (repeat adds bump the quantity)
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		MenuID int64 `json:"menu_id" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.Catalog.FindByID(body.MenuID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu %d not found", body.MenuID))
		return
	}

	cc.Cart.AddItem(*item)
	utils.RespondJSON(c, http.StatusOK, "Item added to order", gin.H{
		"items":  cc.Cart.Lines(),
		"totals": cc.Cart.ComputeTotals(),
	})
}

// RemoveItem -> drop a line; removing an unknown id is a silent no-op
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("menu_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}
	cc.Cart.RemoveItem(id)
	utils.RespondJSON(c, http.StatusOK, "Item removed from order", gin.H{
		"items":  cc.Cart.Lines(),
		"totals": cc.Cart.ComputeTotals(),
	})
}

// AdjustQuantity -> change a line's quantity by delta, never below 1
func (cc *CartController) AdjustQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("menu_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	type reqBody struct {
		Delta int `json:"delta" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.AdjustQuantity(id, body.Delta)
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", gin.H{
		"items":  cc.Cart.Lines(),
		"totals": cc.Cart.ComputeTotals(),
	})
}

// SetCustomer -> free-text customer name and table number, no validation
func (cc *CartController) SetCustomer(c *gin.Context) {
	type reqBody struct {
		CustomerName string `json:"customer_name"`
		TableNumber  string `json:"table_number"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	cc.Cart.SetCustomer(body.CustomerName, body.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Customer updated", nil)
}

// SaveOrder -> snapshot the cart into the history and clear it. A storage
// failure leaves the cart untouched so the cashier can retry.
func (cc *CartController) SaveOrder(c *gin.Context) {
	order, err := cc.Cart.Save()
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order saved successfully!", order)
}
