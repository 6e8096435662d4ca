package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Akhona00/Guardian-Angel-website/config"
	"github.com/Akhona00/Guardian-Angel-website/database"
	"github.com/Akhona00/Guardian-Angel-website/handlers"
	"github.com/Akhona00/Guardian-Angel-website/metrics"
	"github.com/Akhona00/Guardian-Angel-website/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.StripeSecretKey == "" {
		log.Printf("WARNING: STRIPE_SECRET_KEY is not set, checkout will fail")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	stripeService := services.NewStripeService(cfg.StripeSecretKey, cfg.Currency)
	contactRelay := services.NewContactRelay(cfg.ContactRelayURL)
	serverMetrics := metrics.NewServerMetrics()

	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	checkoutHandler := handlers.NewCheckoutHandler(db, stripeService)
	orderHandler := handlers.NewOrderHandler(db)
	contactHandler := handlers.NewContactHandler(db, contactRelay)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(handlers.RequestID())
	router.Use(handlers.Metrics(serverMetrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Guardian Angel Studio server is running",
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.List)

		api.POST("/cart/add", cartHandler.AddItem)
		api.GET("/cart/:sessionId", cartHandler.GetCart)
		api.PUT("/cart/update", cartHandler.UpdateItem)
		api.DELETE("/cart/remove", cartHandler.RemoveItem)

		api.POST("/create-payment-intent", checkoutHandler.CreatePaymentIntent)
		api.POST("/confirm-payment", checkoutHandler.ConfirmPayment)
		api.GET("/orders/:paymentIntentId", orderHandler.GetOrder)

		api.POST("/contact", contactHandler.SubmitContact)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server running on http://localhost:%s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed:", err)
	}
}
