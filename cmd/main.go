package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rso-shop/stock-service/internal/events"
	"github.com/rso-shop/stock-service/internal/handler"
	"github.com/rso-shop/stock-service/internal/repository"
	"github.com/rso-shop/stock-service/internal/seed"
	"github.com/rso-shop/stock-service/internal/service"
	"github.com/rso-shop/stock-service/internal/store"
	"github.com/rso-shop/stock-service/pkg/config"
	"github.com/rso-shop/stock-service/pkg/metrics"
	"github.com/rso-shop/stock-service/pkg/middleware"
	pkgtls "github.com/rso-shop/stock-service/pkg/tls"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := store.Connect(ctx, cfg.MongoHost, cfg.MongoPort)
	if err != nil {
		logger.Fatal("Failed to connect to store", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from store", zap.Error(err))
		}
	}()

	router := store.NewRouter(client, cfg.DatabaseName)
	bootstrap := store.NewBootstrapper(logger)
	stockRepo := repository.NewStockRepository(router, bootstrap)
	productRepo := repository.NewProductRepository(router, bootstrap)

	var publisher service.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
		publisher = producer
	}

	stockService := service.NewStockService(stockRepo, productRepo, publisher, logger)
	productService := service.NewProductService(productRepo, publisher, logger)
	loader := seed.NewLoader(cfg.SeedAPIURL, cfg.SeedFixturePath, logger)
	seedService := service.NewSeedService(loader, stockRepo, productRepo, logger)

	stockHandler := handler.NewStockHandler(stockService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.New(registry)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))
	engine.Use(httpMetrics.Instrument())

	engine.GET("/", stockHandler.Status)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/metrics", metrics.Handler(registry))

	registerAPI(engine.Group(""), stockHandler, productHandler, seedHandler)
	registerAPI(engine.Group("/tenants/:tenant"), stockHandler, productHandler, seedHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	tlsConfig, tlsSource, err := pkgtls.LoadServerConfig(ctx, cfg.TLS, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS config", zap.Error(err))
	}
	defer tlsSource.Close()

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))

		var err error
		if tlsConfig != nil {
			srv.TLSConfig = tlsConfig
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// registerAPI wires the record-service routes into a group. The same
// handlers serve the default database and the tenant-scoped variants;
// the tenant path parameter is empty on the default group.
func registerAPI(g *gin.RouterGroup, stockHandler *handler.StockHandler, productHandler *handler.ProductHandler, seedHandler *handler.SeedHandler) {
	g.GET("/ids", stockHandler.ListIDs)
	g.GET("/stock/:product_id", stockHandler.GetStock)
	g.PUT("/stock/:product_id/:new_value", stockHandler.SetStock)
	g.GET("/info/:product_id", productHandler.GetProduct)
	g.POST("/product", productHandler.AddProduct)
	g.POST("/generate_test_data", seedHandler.GenerateTestData)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
