package main

import (
	"net/http"

	"github.com/rs/zerolog"

	httphandlers "spendwise/internal/interfaces/http"
	"spendwise/internal/shared/config"
	"spendwise/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/signin", deps.AuthHandler.HandleSignIn)
	mux.HandleFunc("/api/auth/signup", deps.AuthHandler.HandleSignUp)

	// Protected routes
	authMiddleware := middleware.Auth(deps.Firebase)

	mux.Handle("/api/users/me", authMiddleware(http.HandlerFunc(deps.UserHandler.HandleMe)))
	mux.Handle("/api/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactions)))
	mux.Handle("/api/transactions/export", authMiddleware(http.HandlerFunc(deps.ExportHandler.HandleExport)))
	mux.Handle("/api/transactions/{id}", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactionByID)))
	mux.Handle("/api/applock", authMiddleware(http.HandlerFunc(deps.AppLockHandler.HandleAppLock)))
	mux.Handle("/api/applock/unlock", authMiddleware(http.HandlerFunc(deps.AppLockHandler.HandleUnlock)))

	// Apply global middleware
	var handler http.Handler = mux
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
		handler = middleware.Telemetry(handler)
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		logger.Info().Msg("TLS security middleware enabled (HSTS)")
	}

	return handler
}
