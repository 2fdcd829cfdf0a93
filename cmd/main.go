package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/billalcoom/bistro-gobackend/internal/config"
	"github.com/billalcoom/bistro-gobackend/internal/db"
	"github.com/billalcoom/bistro-gobackend/internal/handlers"
	"github.com/billalcoom/bistro-gobackend/internal/mailer"
	"github.com/billalcoom/bistro-gobackend/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	bistrodb := client.Database("bistroDb")

	// Confirmation email queue
	mailQueue := mailer.NewQueue(mailer.NewMailgun(cfg.EmailDomain, cfg.EmailPrivateKey, cfg.EmailSender), 64)
	mailQueue.Start(context.Background())
	defer mailQueue.Close()

	// Initialize services and handlers
	userService := services.NewUserService(bistrodb)
	userHandler := handlers.NewUserHandler(userService)

	menuService := services.NewMenuService(bistrodb)
	menuHandler := handlers.NewMenuHandler(menuService)

	reviewService := services.NewReviewService(bistrodb)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	cartService := services.NewCartService(bistrodb)
	cartHandler := handlers.NewCartHandler(cartService)

	stripeService := services.NewStripeService(cfg.PaymentSecretKey)
	paymentService := services.NewPaymentService(bistrodb)
	paymentHandler := handlers.NewPaymentHandler(stripeService, paymentService, mailQueue)

	statsService := services.NewStatsService(bistrodb)
	statsHandler := handlers.NewStatsHandler(statsService)

	tokenHandler := handlers.NewTokenHandler(cfg.AccessTokenSecret)
	gate := handlers.NewGate(cfg.AccessTokenSecret, userService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Bistro Boss Is Running"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")

	router.HandleFunc("/users/admin/{email}", gate.Authenticated(userHandler.CheckAdmin)).Methods("GET")
	router.HandleFunc("/users/admin/{id}", userHandler.PromoteUser).Methods("PATCH")
	router.HandleFunc("/users", gate.Admin(userHandler.GetUsers)).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")

	router.HandleFunc("/menu", menuHandler.GetMenu).Methods("GET")
	router.HandleFunc("/menu", gate.Admin(menuHandler.CreateMenuItem)).Methods("POST")
	router.HandleFunc("/menu/{id}", gate.Admin(menuHandler.DeleteMenuItem)).Methods("DELETE")

	router.HandleFunc("/reviews", reviewHandler.GetReviews).Methods("GET")

	router.HandleFunc("/carts", cartHandler.AddEntry).Methods("POST")
	router.HandleFunc("/carts", gate.Authenticated(cartHandler.GetEntries)).Methods("GET")
	router.HandleFunc("/carts/{id}", cartHandler.DeleteEntry).Methods("DELETE")

	router.HandleFunc("/create-payment-intent", gate.Authenticated(paymentHandler.CreatePaymentIntent)).Methods("POST")
	router.HandleFunc("/payments", gate.Authenticated(paymentHandler.CompletePayment)).Methods("POST")

	router.HandleFunc("/admin-stats", gate.Admin(statsHandler.AdminStats)).Methods("GET")
	router.HandleFunc("/order-stats", gate.Admin(statsHandler.OrderStats)).Methods("GET")

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
