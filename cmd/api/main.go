package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/cache"
	"github.com/gigboard/gigboard-api/internal/chains"
	"github.com/gigboard/gigboard-api/internal/database/postgres"
	"github.com/gigboard/gigboard-api/internal/handlers"
	"github.com/gigboard/gigboard-api/internal/middleware"
	"github.com/gigboard/gigboard-api/internal/repository"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/gigboard/gigboard-api/pkg/db"
	"github.com/gigboard/gigboard-api/pkg/httpclient"
	"github.com/gigboard/gigboard-api/pkg/jwt"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/gigboard/gigboard-api/pkg/profiling"
	"github.com/gigboard/gigboard-api/pkg/recaptcha"
	"github.com/gigboard/gigboard-api/pkg/storage"
	"github.com/gigboard/gigboard-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// registerDirectoryRoutes registers the public directory, registration, and
// internal lookup routes
func registerDirectoryRoutes(
	group *gin.RouterGroup,
	cfg *config.Config,
	generalRateLimiter, registrationRateLimiter *middleware.RateLimiter,
	freelancerHandler *handlers.FreelancerHandler,
	registrationHandler *handlers.RegistrationHandler,
) {
	publicTokens := []string{
		cfg.Auth.FreelancersAPIToken,
		cfg.Auth.FreelancersAPITokenPartner,
	}
	group.GET("/freelancers", generalRateLimiter.Middleware(), middleware.TokenAuthMiddleware(publicTokens...), freelancerHandler.GetPublicFreelancers)
	group.GET("/freelancer/:slug", generalRateLimiter.Middleware(), middleware.TokenAuthMiddleware(publicTokens...), freelancerHandler.GetPublicFreelancerBySlug)
	group.GET("/skills", generalRateLimiter.Middleware(), middleware.TokenAuthMiddleware(publicTokens...), freelancerHandler.GetSkills)
	group.POST("/internal/freelancers", generalRateLimiter.Middleware(), middleware.InternalAPIAuthMiddleware(cfg.Auth.InternalFreelancersAPI), freelancerHandler.GetInternalFreelancers)
	group.POST("/register-freelancer", registrationRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), registrationHandler.RegisterFreelancer)
}

// registerFreelancerAuthRoutes registers wallet sign-in and the
// session-protected profile routes
func registerFreelancerAuthRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authRateLimiter *middleware.RateLimiter,
	profileRateLimiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	tokenManager *jwt.TokenManager,
) {
	// Skip session routes if JWT is not configured
	if tokenManager == nil {
		logger.Warn("Freelancer session routes disabled: JWT_SECRET not configured")
		return
	}

	sessionMiddleware := middleware.SessionMiddleware(tokenManager, cfg.Session.CookieDomain, cfg.Session.CookieSecure)

	// Authentication routes (public)
	auth := router.Group("/api/v1/auth/freelancer")
	auth.POST("/challenge", authRateLimiter.Middleware(), authHandler.RequestChallenge)
	auth.POST("/verify", authHandler.VerifyWallet)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", sessionMiddleware, authHandler.GetSession)

	// Profile self-service routes (protected)
	freelancer := router.Group("/api/v1/freelancer")
	freelancer.Use(sessionMiddleware)

	freelancer.GET("/profile", profileHandler.GetProfile)
	freelancer.POST("/profile", profileRateLimiter.Middleware(), profileHandler.UpdateProfile)
	freelancer.POST("/profile/avatar", profileRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024*1024), profileHandler.UploadAvatar)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Gigboard API",
		zap.String("version", version),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.OTLPEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Continuous profiling (optional)
	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Fatal("Failed to initialize profiler", zap.Error(err))
		}
		defer stopProfiler()
	}

	// Initialize HTTP client for external API calls
	httpClient := httpclient.NewStandardClient()

	// Frame transaction preparation has no database dependency
	frameService := services.NewFrameService(chains.NewRegistry())
	frameHandler := handlers.NewFrameHandler(frameService)
	logsHandler := handlers.NewLogsHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - SECURITY: Only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "freelancers_api_auth_token", "x-internal-freelancers-api-auth-token", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for freelancer session cookies
		MaxAge:           12 * time.Hour,
	}))

	// SECURITY: Rate limiters to prevent abuse and DoS attacks
	// Different limits for different endpoint types
	generalRateLimiter := middleware.NewRateLimiter(100, 200)        // 100 req/sec, burst of 200
	frameRateLimiter := middleware.NewRateLimiter(10, 20)            // 10 req/sec, burst of 20
	profileRateLimiter := middleware.NewRateLimiter(10, 20)          // 10 req/sec, burst of 20
	registrationRateLimiter := middleware.NewRateLimiter(0.00667, 3) // 2 req/5min (0.00667 req/sec), burst of 3
	authRateLimiter := middleware.NewRateLimiter(0.1, 5)             // 6 req/min, burst of 5 (login abuse prevention)

	// API v1 routes
	// SECURITY: Apply body size limits to prevent DoS attacks
	v1 := router.Group("/api/v1")
	v1.POST("/frames/deposit/approval", frameRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), frameHandler.PrepareDepositApproval)
	v1.POST("/logs", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), logsHandler.ReceiveFrontendLogs)

	// The healthcheck reports ready immediately unless a cache warm-up is pending
	cacheReadyFunc := func() bool { return true }
	var healthPinger handlers.Pinger

	if cfg.Database.WorkOffline {
		logger.Warn("DB_WORK_OFFLINE is set: directory, registration, and session routes are disabled")
	} else {
		// Initialize PostgreSQL connection pool
		pool, err := db.NewPool(context.Background(), db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
		}
		defer pool.Close()

		// NOTE: Database migrations are run separately via the migrate command
		// before starting the app: ./migrate or docker-compose run migrate

		pgClient := postgres.NewClient(pool)
		healthPinger = pgClient

		// Data sources and caches
		freelancerDataSource := repository.NewPostgresFreelancerDataSource(pgClient)
		skillsDataSource := repository.NewPostgresSkillsDataSource(pgClient)

		freelancerCache := cache.NewFreelancerCache(freelancerDataSource, cfg.Cache.FreelancerTTLSeconds)
		skillsCache := cache.NewSkillsCache(skillsDataSource)

		// Warm the freelancer cache synchronously before accepting requests
		// so the container is not marked healthy with an empty directory
		if cfg.Cache.DisableFreelancersCache {
			logger.Warn("Freelancer cache is DISABLED - reading from database on every request (experimental feature)")
		} else {
			if err := freelancerCache.Initialize(); err != nil {
				logger.Fatal("Failed to initialize freelancer cache", zap.Error(err))
			}
			cacheReadyFunc = freelancerCache.IsReady
		}

		if err := skillsCache.Initialize(); err != nil {
			logger.Fatal("Failed to initialize skills cache", zap.Error(err))
		}

		freelancerRepo := repository.NewFreelancerRepository(freelancerDataSource, freelancerCache, skillsCache, cfg.Cache.DisableFreelancersCache)

		// Object storage client for avatar uploads (optional)
		var storageClient services.StorageClient
		if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
			client, err := storage.NewClient(storage.Config{
				Endpoint:        cfg.Storage.Endpoint,
				Region:          cfg.Storage.Region,
				Bucket:          cfg.Storage.BucketName,
				AccessKeyID:     cfg.Storage.AccessKeyID,
				SecretAccessKey: cfg.Storage.SecretAccessKey,
				PublicBaseURL:   cfg.Storage.PublicBaseURL,
			})
			if err != nil {
				logger.Fatal("Failed to initialize object storage client", zap.Error(err))
			}
			storageClient = client
		}

		verifier := recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)

		// Initialize services
		freelancerService := services.NewFreelancerService(freelancerRepo, cfg)
		registrationService := services.NewRegistrationService(freelancerRepo, verifier, cfg, httpClient)
		authService := services.NewAuthService(freelancerRepo, cfg)
		profileService := services.NewProfileService(freelancerRepo, storageClient, cfg)

		// Initialize handlers
		freelancerHandler := handlers.NewFreelancerHandler(freelancerService, cfg.Server.BaseURL)
		registrationHandler := handlers.NewRegistrationHandler(registrationService)
		authHandler := handlers.NewAuthHandler(authService)
		profileHandler := handlers.NewProfileHandler(profileService)

		registerDirectoryRoutes(v1, cfg, generalRateLimiter, registrationRateLimiter, freelancerHandler, registrationHandler)
		registerFreelancerAuthRoutes(router, cfg, authRateLimiter, profileRateLimiter, authHandler, profileHandler, authService.GetTokenManager())
	}

	// Utility endpoints (not versioned - operational endpoints)
	healthHandler := handlers.NewHealthHandler(healthPinger, cacheReadyFunc, version)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Create HTTP server
	// SECURITY: Bind to all interfaces for Docker Compose networking
	// Network isolation is enforced by Docker Compose (backend has no public ports)
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // SECURITY: 1 MB max header size
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
