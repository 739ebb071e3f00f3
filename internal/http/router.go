package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"focusquote-backend/internal/handlers"
	"focusquote-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ServiceHandler,
	quoteHandler *handlers.QuoteHandler,
	financeHandler *handlers.FinanceHandler,
	syncHandler *handlers.SyncHandler,
	publicHandler *handlers.PublicHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	totpHandler *handlers.TOTPHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/totp/verify", authHandler.VerifyTOTP).Methods("POST")

	// Public quote link (NO AUTHENTICATION - the link itself is the secret)
	r.HandleFunc("/public/quotes/{quoteId}", publicHandler.ViewQuote).Methods("GET")
	r.HandleFunc("/public/quotes/{quoteId}/approve", publicHandler.ApproveQuote).Methods("POST")
	r.HandleFunc("/public/quotes/{quoteId}/pdf", publicHandler.DownloadPDF).Methods("GET")

	// Protected API routes - Sync
	syncAPI := r.PathPrefix("/api/sync").Subrouter()
	syncAPI.Use(authMiddleware.Authenticate)
	syncAPI.HandleFunc("", syncHandler.Sync).Methods("GET")

	// Protected API routes - Profile
	profileAPI := r.PathPrefix("/api/profile").Subrouter()
	profileAPI.Use(authMiddleware.Authenticate)
	profileAPI.HandleFunc("", profileHandler.GetProfile).Methods("GET")
	profileAPI.HandleFunc("", profileHandler.UpdateProfile).Methods("PUT")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Protected API routes - Service catalog
	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.Use(authMiddleware.Authenticate)
	servicesAPI.HandleFunc("", serviceHandler.ListServices).Methods("GET")
	servicesAPI.HandleFunc("", serviceHandler.CreateService).Methods("POST")
	servicesAPI.HandleFunc("/{id}", serviceHandler.UpdateService).Methods("PUT")
	servicesAPI.HandleFunc("/{id}", serviceHandler.DeleteService).Methods("DELETE")

	// Protected API routes - Quotes
	quotesAPI := r.PathPrefix("/api/quotes").Subrouter()
	quotesAPI.Use(authMiddleware.Authenticate)
	quotesAPI.HandleFunc("", quoteHandler.ListQuotes).Methods("GET")
	quotesAPI.HandleFunc("", quoteHandler.CreateQuote).Methods("POST")
	quotesAPI.HandleFunc("/{id}", quoteHandler.GetQuote).Methods("GET")
	quotesAPI.HandleFunc("/{id}", quoteHandler.UpdateQuote).Methods("PUT")
	quotesAPI.HandleFunc("/{id}", quoteHandler.DeleteQuote).Methods("DELETE")
	quotesAPI.HandleFunc("/{id}/status", quoteHandler.UpdateStatus).Methods("PUT")
	quotesAPI.HandleFunc("/{id}/pdf", quoteHandler.DownloadPDF).Methods("GET")

	// Protected API routes - Finance
	financeAPI := r.PathPrefix("/api/finance").Subrouter()
	financeAPI.Use(authMiddleware.Authenticate)
	financeAPI.HandleFunc("/statement", financeHandler.GetStatement).Methods("GET")

	transactionsAPI := r.PathPrefix("/api/transactions").Subrouter()
	transactionsAPI.Use(authMiddleware.Authenticate)
	transactionsAPI.HandleFunc("", financeHandler.ListTransactions).Methods("GET")
	transactionsAPI.HandleFunc("", financeHandler.CreateTransaction).Methods("POST")
	transactionsAPI.HandleFunc("/{id}", financeHandler.DeleteEntry).Methods("DELETE")

	// Protected API routes - Reports & dashboard
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/quotes", reportHandler.GetQuoteReport).Methods("GET")

	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("", reportHandler.GetDashboard).Methods("GET")

	// Protected API routes - 2FA (admin only)
	totpAPI := r.PathPrefix("/api/totp").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.Use(authMiddleware.RequireAdmin)
	totpAPI.HandleFunc("/setup", totpHandler.SetupTOTP).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.EnableTOTP).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.DisableTOTP).Methods("POST")
	totpAPI.HandleFunc("/status", totpHandler.GetStatus).Methods("GET")

	// Protected API routes - Admin panel
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.Authenticate)
	adminAPI.Use(authMiddleware.RequireAdmin)
	adminAPI.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	adminAPI.HandleFunc("/users/{id}/role", adminHandler.ToggleRole).Methods("PUT")
	adminAPI.HandleFunc("/users/{id}/toggle-blocked", adminHandler.ToggleBlocked).Methods("PUT")
	adminAPI.HandleFunc("/users/{id}/profile", adminHandler.DeleteProfile).Methods("DELETE")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
