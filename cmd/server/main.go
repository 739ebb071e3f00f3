package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focusquote-backend/internal/auth"
	"focusquote-backend/internal/cache"
	"focusquote-backend/internal/config"
	"focusquote-backend/internal/database"
	"focusquote-backend/internal/db"
	"focusquote-backend/internal/handlers"
	"focusquote-backend/internal/health"
	h "focusquote-backend/internal/http"
	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/services"
	"focusquote-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Not available, running without cache: %v", err)
	} else {
		log.Println("[Redis] Connected")
	}

	jwtManager := auth.NewJWTManager(cfg)
	archiver := storage.NewArchiver(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	profileRepo := repositories.NewProfileRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	serviceRepo := repositories.NewServiceRepository(pool)
	quoteRepo := repositories.NewQuoteRepository(pool)
	transactionRepo := repositories.NewTransactionRepository(pool)
	totpRepo := repositories.NewTOTPRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo, totpRepo)
	clientService := services.NewClientService(clientRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	quoteService := services.NewQuoteService(quoteRepo, clientRepo)
	financeService := services.NewFinanceService(transactionRepo, quoteRepo)
	syncService := services.NewSyncService(profileRepo, clientRepo, serviceRepo, quoteRepo)
	pdfService := services.NewPDFService()
	reportService := services.NewReportService(quoteRepo, profileRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, totpService, jwtManager)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	clientHandler := handlers.NewClientHandler(clientService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	quoteHandler := handlers.NewQuoteHandler(quoteService, pdfService, profileRepo, clientRepo, archiver)
	financeHandler := handlers.NewFinanceHandler(financeService)
	syncHandler := handlers.NewSyncHandler(syncService)
	publicHandler := handlers.NewPublicHandler(quoteService, pdfService, profileRepo, clientRepo)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(userRepo, profileRepo)
	totpHandler := handlers.NewTOTPHandler(totpService, userRepo)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := h.NewRouter(
		authHandler,
		profileHandler,
		clientHandler,
		serviceHandler,
		quoteHandler,
		financeHandler,
		syncHandler,
		publicHandler,
		reportHandler,
		adminHandler,
		totpHandler,
		healthHandler,
		authMiddleware,
	)

	corsWrapper := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsWrapper(router)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server running on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
