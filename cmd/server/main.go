package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashlearn/internal/config"
	"flashlearn/internal/database"
	"flashlearn/internal/handlers"
	"flashlearn/internal/security"
	"flashlearn/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize services
	statsService := service.NewStatsService(db)
	studyService := service.NewStudyService(db, statsService, service.DefaultReviewPolicy())
	deckService := service.NewDeckService(db)
	flashcardService := service.NewFlashcardService(db)
	dashboardService := service.NewDashboardService(db, statsService)

	// Initialize handlers
	limiter := security.NewRateLimiter(60, time.Minute)
	middleware := handlers.NewMiddleware(cfg.TokenSecret, limiter)
	deckHandler := handlers.NewDeckHandler(deckService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)
	progressHandler := handlers.NewProgressHandler(studyService)
	statsHandler := handlers.NewStatsHandler(statsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Healthz)

	// Deck routes
	mux.HandleFunc("GET /decks", middleware.RequireUser(deckHandler.ListDecks))
	mux.HandleFunc("POST /decks", middleware.RequireUser(middleware.RateLimit(deckHandler.CreateDeck)))
	mux.HandleFunc("GET /decks/{deckID}", middleware.RequireUser(deckHandler.GetDeck))
	mux.HandleFunc("PUT /decks/{deckID}", middleware.RequireUser(middleware.RateLimit(deckHandler.UpdateDeck)))
	mux.HandleFunc("DELETE /decks/{deckID}", middleware.RequireUser(middleware.RateLimit(deckHandler.DeleteDeck)))

	// Flashcard routes
	mux.HandleFunc("GET /flashcards", middleware.RequireUser(flashcardHandler.ListFlashcards))
	mux.HandleFunc("POST /flashcards", middleware.RequireUser(middleware.RateLimit(flashcardHandler.CreateFlashcard)))
	mux.HandleFunc("PUT /flashcards/{flashcardID}", middleware.RequireUser(middleware.RateLimit(flashcardHandler.UpdateFlashcard)))
	mux.HandleFunc("DELETE /flashcards/{flashcardID}", middleware.RequireUser(middleware.RateLimit(flashcardHandler.DeleteFlashcard)))

	// Progress routes
	mux.HandleFunc("GET /progress", middleware.RequireUser(progressHandler.ListProgress))
	mux.HandleFunc("POST /progress", middleware.RequireUser(middleware.RateLimit(progressHandler.RecordAttempt)))
	mux.HandleFunc("GET /progress/deck/{deckID}", middleware.RequireUser(progressHandler.ListDeckProgress))
	mux.HandleFunc("GET /progress/flashcard/{flashcardID}", middleware.RequireUser(progressHandler.ListFlashcardProgress))
	mux.HandleFunc("DELETE /progress/{progressID}", middleware.RequireUser(middleware.RateLimit(progressHandler.DeleteProgress)))

	// Stats and dashboard routes
	mux.HandleFunc("GET /user/stats", middleware.RequireUser(statsHandler.GetStats))
	mux.HandleFunc("PUT /user/stats", middleware.RequireUser(middleware.RateLimit(statsHandler.UpdateStats)))
	mux.HandleFunc("GET /dashboard", middleware.RequireUser(dashboardHandler.GetDashboard))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
