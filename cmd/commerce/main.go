package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/socialclub/internal/pkg/config"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/health"
	"github.com/piresc/socialclub/internal/pkg/invalidation"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	nrpkg "github.com/piresc/socialclub/internal/pkg/newrelic"
	"github.com/piresc/socialclub/internal/pkg/server"
	"github.com/piresc/socialclub/internal/utils"
	affiliateGateway "github.com/piresc/socialclub/services/affiliate/gateway"
	affiliateHandler "github.com/piresc/socialclub/services/affiliate/handler"
	affiliateRepository "github.com/piresc/socialclub/services/affiliate/repository"
	affiliateUsecase "github.com/piresc/socialclub/services/affiliate/usecase"
	authGateway "github.com/piresc/socialclub/services/auth/gateway"
	authHandler "github.com/piresc/socialclub/services/auth/handler"
	authRepository "github.com/piresc/socialclub/services/auth/repository"
	authUsecase "github.com/piresc/socialclub/services/auth/usecase"
	catalogHandler "github.com/piresc/socialclub/services/catalog/handler"
	catalogRepository "github.com/piresc/socialclub/services/catalog/repository"
	catalogUsecase "github.com/piresc/socialclub/services/catalog/usecase"
	paymentGateway "github.com/piresc/socialclub/services/payment/gateway"
	paymentHandler "github.com/piresc/socialclub/services/payment/handler"
	paymentRepository "github.com/piresc/socialclub/services/payment/repository"
	paymentUsecase "github.com/piresc/socialclub/services/payment/usecase"
	revenueHandler "github.com/piresc/socialclub/services/revenue/handler"
	revenueRepository "github.com/piresc/socialclub/services/revenue/repository"
	revenueUsecase "github.com/piresc/socialclub/services/revenue/usecase"
)

func main() {
	appName := "commerce-service"
	configPath := "config/commerce.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	db := postgresClient.GetDB()
	invalidator := invalidation.NewPolicy(redisClient)

	// Initialize repositories
	revenueRepo := revenueRepository.NewRevenueRepo(configs, db, redisClient)
	paymentRepo := paymentRepository.NewPaymentRepo(configs, db, redisClient)
	catalogRepo := catalogRepository.NewCatalogRepo(configs, db, redisClient)
	affiliateRepo := affiliateRepository.NewAffiliateRepo(configs, db)
	authRepo := authRepository.NewAuthRepo(configs, db, redisClient)

	// Initialize gateways
	paymentGW := paymentGateway.NewPaymentGW(configs.QPay, redisClient, natsClient)
	affiliateGW := affiliateGateway.NewAffiliateGW(natsClient)
	authGW := authGateway.NewAuthGW(natsClient)

	// Initialize usecases
	revenueUC := revenueUsecase.NewRevenueUC(revenueRepo, configs)
	paymentUC := paymentUsecase.NewPaymentUC(paymentRepo, paymentGW, invalidator, configs)
	catalogUC := catalogUsecase.NewCatalogUC(catalogRepo, invalidator, configs)
	affiliateUC := affiliateUsecase.NewAffiliateUC(affiliateRepo, affiliateGW, invalidator, configs)
	authUC := authUsecase.NewAuthUC(authRepo, authGW, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Panic recovery first so it also covers the other middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient,
		"redis":    redisClient,
		"nats":     natsClient,
	})

	// Register service routes
	revenueHandler.NewHandler(revenueUC, configs).RegisterRoutes(e)
	paymentHandler.NewHandler(paymentUC, configs).RegisterRoutes(e)
	catalogHandler.NewHandler(catalogUC, configs).RegisterRoutes(e)
	affiliateHandler.NewHandler(affiliateUC, configs).RegisterRoutes(e)
	authHandler.NewHandler(authUC, redisClient, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	if nrApp != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
	_ = zapLogger.Sync()
}
