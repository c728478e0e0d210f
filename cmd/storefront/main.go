package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/shop/storefront/internal/application/cart"
	catalogapp "github.com/shop/storefront/internal/application/catalog"
	identityapp "github.com/shop/storefront/internal/application/identity"
	orderapp "github.com/shop/storefront/internal/application/order"
	reviewapp "github.com/shop/storefront/internal/application/review"
	wishlistapp "github.com/shop/storefront/internal/application/wishlist"
	"github.com/shop/storefront/internal/infrastructure/api"
	"github.com/shop/storefront/internal/infrastructure/cache"
	"github.com/shop/storefront/internal/infrastructure/config"
	"github.com/shop/storefront/internal/infrastructure/localstore"
	"github.com/shop/storefront/internal/infrastructure/logger"
	"github.com/shop/storefront/internal/infrastructure/session"
	"github.com/shop/storefront/internal/interfaces/http/handler"
	"github.com/shop/storefront/internal/interfaces/http/middleware"
	"github.com/shop/storefront/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront gateway",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("backend", cfg.API.BaseURL),
	)

	// Session holds the bearer token; the API client reads it per request.
	sessions := session.NewManager(cfg.Store.TokenPath(), log)

	client, err := api.NewClient(&api.Config{
		BaseURL:        cfg.API.BaseURL,
		TimeoutSeconds: cfg.API.TimeoutSeconds,
	}, api.TokenFunc(sessions.Token))
	if err != nil {
		log.Fatal("Failed to create API client", zap.Error(err))
	}

	// Product cache: Redis when configured, in-memory otherwise.
	cacheFactory := cache.NewProductCacheFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log))
	productCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create product cache", zap.Error(err))
	}
	defer func() {
		if err := productCache.Close(); err != nil {
			log.Warn("Error closing product cache", zap.Error(err))
		}
	}()

	// Cart state: guest snapshot on disk, resolver for hydration, and
	// the facade that routes mutations by auth state.
	store := localstore.NewStore(cfg.Store.CartPath(), log)
	resolver := cartapp.NewResolver(client, productCache, log)
	notifier := cartapp.NewLogNotifier(log)
	cartService := cartapp.NewService(client, sessions, resolver, store, notifier, log)

	// Reconcile the cart on every auth transition.
	sessions.Subscribe(func(authenticated bool) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cartService.Reconcile(ctx, authenticated)
	})

	// Populate the cart from the authoritative source at startup.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	cartService.Load(startupCtx)
	cancelStartup()

	catalogService := catalogapp.NewService(client, productCache, log)
	identityService := identityapp.NewService(client, sessions, log)
	orderService := orderapp.NewService(client, cartService, sessions, log)
	wishlistService := wishlistapp.NewService(client, sessions, log)
	reviewService := reviewapp.NewService(client, sessions, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCartHandler(cartService, catalogService))
	r.Register(handler.NewCatalogHandler(catalogService))
	r.Register(handler.NewAuthHandler(identityService))
	r.Register(handler.NewOrderHandler(orderService))
	r.Register(handler.NewWishlistHandler(wishlistService))
	r.Register(handler.NewReviewHandler(reviewService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
