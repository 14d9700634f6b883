package router

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/logidash/internal/config"
	"github.com/polkiloo/logidash/internal/server/http/handlers"
	"github.com/polkiloo/logidash/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LogisticsFacade, verifier middleware.TokenVerifier, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	dashboardHandler := handlers.NewDashboardHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	shipmentHandler := handlers.NewShipmentHandler(facade)
	insightsHandler := handlers.NewInsightsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	guard := middleware.WriteGuard(verifier)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Get)
	api.GET("/dashboard", dashboardHandler.Get)
	// Insights only read the posted payload, so they stay outside the write guard.
	api.POST("/generate-insights", insightsHandler.Generate)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", guard, orderHandler.Create)
	orders.PUT("/:id", guard, orderHandler.Update)
	orders.DELETE("/:id", guard, orderHandler.Delete)

	shipments := api.Group("/shipments")
	shipments.GET("", shipmentHandler.List)
	shipments.POST("", guard, shipmentHandler.Create)
	shipments.PUT("/:id", guard, shipmentHandler.Update)
	shipments.DELETE("/:id", guard, shipmentHandler.Delete)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
