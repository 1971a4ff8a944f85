package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/jobly/internal/config"
	"github.com/forgo/jobly/internal/database"
	"github.com/forgo/jobly/internal/handler"
	"github.com/forgo/jobly/internal/middleware"
	"github.com/forgo/jobly/internal/repository"
	"github.com/forgo/jobly/internal/service"
	"github.com/forgo/jobly/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewPostgres(cfg.DatabaseConfig())

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database", slog.Int("max_conns", cfg.Database.MaxConns))

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// The server only verifies tokens; signing happens in cmd/admin-token.
	jwtService, err := jwt.NewService(jwt.Config{
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newHandler(db, jwtService, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// newHandler wires repositories, services and handlers onto a router and
// wraps it in the global middleware.
func newHandler(db database.Database, verifier middleware.TokenValidator, allowedOrigins []string) http.Handler {
	// Initialize repositories
	jobRepo := repository.NewJobRepository(db)

	// Initialize services
	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo: jobRepo,
	})

	// Initialize handlers
	jobHandler := handler.NewJobHandler(handler.JobHandlerConfig{
		JobService: jobService,
	})
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Job endpoints
	authMiddleware := middleware.Auth(verifier)
	adminMiddleware := middleware.AdminAuth(verifier)
	jobHandler.RegisterRoutes(mux, authMiddleware, adminMiddleware)

	// Apply global middleware
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(allowedOrigins),
		middleware.Compress,
	)
}
