package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vedakart/storefront-gateway/internal/api/handlers"
	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	"github.com/vedakart/storefront-gateway/internal/backend"
	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/config"
	"github.com/vedakart/storefront-gateway/internal/health"
	"github.com/vedakart/storefront-gateway/internal/metrics"
	"github.com/vedakart/storefront-gateway/internal/session"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/tracing"
	"github.com/vedakart/storefront-gateway/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	if cfg.Otel.ExporterEndpoint != "" {
		shutdownTracing, err := tracing.Init(ctx, &cfg.Otel)
		if err != nil {
			slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				slog.Warn("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
			}
		}()
	}

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.GetAddr(),
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sharedCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := sharedCache.Close(); err != nil {
			slog.Warn("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Backend session: one shared identity-bound handle
	provider := session.NewProvider(func(identity string) (backend.Facade, error) {
		return backend.NewClient(cfg.Backend.BaseURL, identity, cfg.Backend.Timeout), nil
	}, sharedCache, logger)

	if err := provider.Connect(ctx, cfg.Backend.Identity); err != nil {
		slog.Error("❌ Error connecting the backend session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dataStore := store.New(provider, sharedCache, logger)

	var emailService sendgrid.EmailService
	if cfg.SendGrid.Enabled {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	catalogHandler := handlers.NewCatalogHandler(dataStore)
	productAdminHandler := handlers.NewProductAdminHandler(dataStore)
	inquiryHandler := handlers.NewInquiryHandler(dataStore, emailService, cfg.SendGrid.OwnerEmail)
	salesHandler := handlers.NewSalesHandler(dataStore)
	dashboardHandler := handlers.NewDashboardHandler(dataStore)
	authHandler := handlers.NewAuthHandler(dataStore, &cfg.Security, cfg.Backend.Identity)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, provider)
	if err != nil {
		slog.Error("❌ Error initializing health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("store initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	admin := func(h http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(authMiddleware.RequireAdmin(h))
	}

	// Setup router
	routerMux := http.NewServeMux()

	// Public storefront
	routerMux.HandleFunc("GET /api/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("POST /api/inquiries", inquiryHandler.SubmitInquiry())
	routerMux.HandleFunc("POST /api/login", authHandler.Login())

	// Back office
	routerMux.HandleFunc("GET /api/admin/products", admin(productAdminHandler.ListProducts()))
	routerMux.HandleFunc("POST /api/admin/products", admin(productAdminHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/admin/products/{id}", admin(productAdminHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/admin/products/{id}", admin(productAdminHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/admin/products/low-stock", admin(productAdminHandler.ListLowStockProducts()))
	routerMux.HandleFunc("PUT /api/admin/settings/low-stock-threshold", admin(productAdminHandler.SetLowStockThreshold()))
	routerMux.HandleFunc("GET /api/admin/inquiries", admin(inquiryHandler.ListInquiries()))
	routerMux.HandleFunc("POST /api/admin/inquiries/{id}/read", admin(inquiryHandler.MarkInquiryRead()))
	routerMux.HandleFunc("DELETE /api/admin/inquiries/{id}", admin(inquiryHandler.DeleteInquiry()))
	routerMux.HandleFunc("POST /api/admin/sales", admin(salesHandler.RecordSale()))
	routerMux.HandleFunc("GET /api/admin/sales", admin(salesHandler.ListSales()))
	routerMux.HandleFunc("GET /api/admin/income-stats", admin(salesHandler.GetIncomeStats()))
	routerMux.HandleFunc("GET /api/admin/dashboard", admin(dashboardHandler.GetSummary()))
	routerMux.HandleFunc("GET /api/admin/role", authMiddleware.Authenticate(authHandler.GetRole()))
	routerMux.HandleFunc("GET /api/admin/is-admin", authMiddleware.Authenticate(authHandler.IsAdmin()))
	routerMux.HandleFunc("GET /api/admin/profile", admin(authHandler.GetProfile()))
	routerMux.HandleFunc("PUT /api/admin/profile", admin(authHandler.SaveProfile()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /healthz", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
