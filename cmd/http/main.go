package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gameroom/backoffice/internal/adapters/cloudinary"
	"github.com/gameroom/backoffice/internal/adapters/config"
	"github.com/gameroom/backoffice/internal/adapters/http"
	"github.com/gameroom/backoffice/internal/adapters/http/controllers"
	"github.com/gameroom/backoffice/internal/adapters/mongo"
	"github.com/gameroom/backoffice/internal/adapters/mongo/repository"
	"github.com/gameroom/backoffice/internal/adapters/outbox"
	"github.com/gameroom/backoffice/internal/adapters/rabbitmq"
	"github.com/gameroom/backoffice/internal/adapters/redis"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/service"
)

// @title       Game Room Back Office API
// @version     1.0
// @description Inventory, point-of-sale and play-session management API

// @host     localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.Level, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// image storage
	uploader, err := cloudinary.NewUploader(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
	if err != nil {
		logger.Fatal(ctx, "Failed to configure Cloudinary", err, nil)
	}

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	productRepository := repository.NewProductRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)
	saleRepository := repository.NewSaleRepository(database, outboxRepository)
	preorderRepository := repository.NewPreorderRepository(database, outboxRepository)
	sessionRepository := repository.NewSessionRepository(database)
	userRepository := repository.NewUserRepository(database)
	txManager := mongo.NewTransactionManager(mongoClient)

	// caches and rate limiter
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[service.CheckoutResult]](redisClient, "idempotency-cache")
	summaryCache := redis.NewCache[service.SummaryReport](redisClient, "report-summary-cache")
	rankingCache := redis.NewCache[service.ProductRankingReport](redisClient, "report-ranking-cache")
	seriesCache := redis.NewCache[service.SalesSeriesReport](redisClient, "report-series-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// report timezone
	location, err := time.LoadLocation(cfg.Reports.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid reports timezone, falling back to UTC", err, map[string]any{"timezone": cfg.Reports.Timezone})
		location = time.UTC
	}

	// services
	authService := service.NewAuthService(userRepository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	productService := service.NewProductService(productRepository, uploader)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)
	checkoutService := service.NewCheckoutService(saleRepository, productRepository, txManager, idempotencyService, cfg.Checkout.UseTransactions)
	saleService := service.NewSaleService(saleRepository)
	preorderService := service.NewPreorderService(preorderRepository, productRepository)
	sessionService := service.NewSessionService(sessionRepository)
	reportService := service.NewReportService(saleRepository, productRepository, preorderRepository, summaryCache, rankingCache, seriesCache, cfg.Reports.CacheTTL, location)

	// controllers
	authController := controllers.NewAuthController(authService)
	saleController := controllers.NewSaleController(checkoutService, saleService)
	productController := controllers.NewProductController(productService)
	preorderController := controllers.NewPreorderController(preorderService)
	sessionController := controllers.NewSessionController(sessionService)
	reportController := controllers.NewReportController(reportService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(
		healthController,
		authController,
		saleController,
		productController,
		preorderController,
		sessionController,
		reportController,
		authService,
		rateLimiter,
		cfg.HTTP.AllowedOrigins,
	)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
