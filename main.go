package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/events"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local store (two logical keys: menuItems, orderHistory)
	store, err := database.Open(cfg.DataFile)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ids, err := services.NewIDNode(cfg.IDNode)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to init id generator: %v", err)
	}

	// Event bus + websocket hub for the POS snackbar notifications
	bus := events.NewBus()
	hub := events.NewHub()
	if err := hub.Listen(bus); err != nil {
		utils.ErrorLogger.Fatalf("Failed to subscribe hub: %v", err)
	}

	r := router.SetupRouter(store, ids, bus, hub)

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateInterval)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
