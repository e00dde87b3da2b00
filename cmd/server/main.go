package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"petminder/internal/config"
	"petminder/internal/database"
	"petminder/internal/handlers"
	"petminder/internal/logger"
	"petminder/internal/middleware"
	"petminder/internal/services/assistant"
	"petminder/internal/telemetry"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug mode for assistant API logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if syncErr := zapLogger.Sync(); syncErr != nil {
			// Ignore sync errors in production
			_ = syncErr
		}
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("sqlite_path", logger.SanitizePath(cfg.SQLitePath)),
		zap.String("ai_model", cfg.AIModel),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Initialize OpenTelemetry if enabled
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "petminder-api", cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Open the embedded database and run migrations
	db, err := database.New(cfg.SQLitePath)
	if err != nil {
		zapLogger.Fatal("failed_to_open_database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Warn("failed_to_close_database", zap.Error(err))
		}
	}()
	zapLogger.Info("database_ready")

	// Initialize repositories
	petRepo := database.NewPetRepository(db)
	taskRepo := database.NewTaskRepository(db)
	prefRepo := database.NewPreferencesRepository(db)

	// Load preferences once at startup so a broken preferences table is
	// visible immediately, not on first request.
	prefs, err := prefRepo.Load(context.Background())
	if err != nil {
		zapLogger.Fatal("failed_to_load_preferences", zap.Error(err))
	}
	zapLogger.Info("preferences_loaded",
		zap.String("theme", string(prefs.Theme)),
		zap.Bool("notifications_enabled", prefs.NotificationsEnabled),
	)

	// Initialize assistant provider. Missing credentials disable the
	// assistant; chat requests then answer with the fixed fallback.
	var provider assistant.Provider
	if cfg.OpenAIKey != "" {
		provider = assistant.NewOpenAIProviderWithLogger(cfg.OpenAIKey, cfg.AIBaseURL, cfg.AIModel, zapLogger, debugMode)
		zapLogger.Info("assistant_enabled", zap.String("model", cfg.AIModel))
	} else {
		zapLogger.Warn("assistant_disabled_no_api_key")
	}

	// Initialize handlers
	petHandler := handlers.NewPetHandler(petRepo, zapLogger)
	taskHandler := handlers.NewTaskHandler(taskRepo, zapLogger)
	prefHandler := handlers.NewPreferencesHandler(prefRepo)
	resetHandler := handlers.NewResetHandler(db, zapLogger)
	chatHandler := handlers.NewChatHandler(provider, zapLogger)
	healthChecker := handlers.NewHealthChecker(db)

	// Setup router
	r := mux.NewRouter()

	// Note: in gorilla/mux, middleware registered first wraps outermost.
	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("petminder-api"))
		zapLogger.Info("otel_middleware_enabled")
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORSFromEnv(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// Public routes (no rate limiting for health checks)
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/version", handlers.VersionHandler).Methods("GET")

	// OpenAPI spec (public)
	openAPIPath := filepath.Join("api", "openapi", "openapi.yaml")
	openAPIHandler := handlers.NewOpenAPIHandler(openAPIPath)
	openAPIHandler.RegisterRoutes(r)

	// API v1 routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(rateLimitMW)

	petHandler.RegisterRoutes(apiRouter.PathPrefix("/pets").Subrouter())
	taskHandler.RegisterRoutes(apiRouter.PathPrefix("/tasks").Subrouter())
	prefHandler.RegisterRoutes(apiRouter.PathPrefix("/preferences").Subrouter())
	apiRouter.HandleFunc("/reset", resetHandler.Reset).Methods("POST")
	apiRouter.HandleFunc("/assistant/chat", chatHandler.Chat).Methods("POST")

	// Catch-all OPTIONS handler so preflight requests succeed even on
	// routes that don't register the method; CORS middleware has already
	// set the headers by the time this runs.
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   65 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
