package router

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/events"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/services"
)

// SetupRouter builds the services on top of the store and wires every POS
// route. The cart is created here once: it is the single in-progress order
// shared by all requests from the terminal.
func SetupRouter(store *database.Store, ids *snowflake.Node, bus *events.Bus, hub *events.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	catalog := services.NewCatalog(store, ids)
	ledger := services.NewLedger(store)
	cart := services.NewCart(ledger, ids, bus)

	menuCtrl := controllers.NewMenuController(catalog)
	cartCtrl := controllers.NewCartController(cart, catalog)
	historyCtrl := controllers.NewHistoryController(ledger)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// POS screen notifications (snackbar feedback)
	r.GET("/pos/ws", controllers.PosSocketHandler(hub))

	// Menu browsing
	r.GET("/categories", menuCtrl.GetCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)

	// Product management
	products := r.Group("/products")
	products.Use(middlewares.NewStrictRateLimiter())
	{
		products.POST("", menuCtrl.CreateProduct)
	}

	// Current order
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items/:menu_id", cartCtrl.AdjustQuantity)
	r.DELETE("/cart/items/:menu_id", cartCtrl.RemoveItem)
	r.PUT("/cart/customer", cartCtrl.SetCustomer)
	r.POST("/cart/save", cartCtrl.SaveOrder)

	// Order history
	r.GET("/orders", historyCtrl.GetOrders)
	r.GET("/orders/export", historyCtrl.ExportOrders)
	r.GET("/orders/report", historyCtrl.RevenueReport)
	r.GET("/orders/:order_id/invoice", historyCtrl.GetInvoice)

	return r
}
