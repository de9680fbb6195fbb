package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/socialclub/internal/pkg/config"
	"github.com/piresc/socialclub/internal/pkg/health"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/middleware"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	nrpkg "github.com/piresc/socialclub/internal/pkg/newrelic"
	"github.com/piresc/socialclub/internal/pkg/server"
	"github.com/piresc/socialclub/services/notification/gateway/ses"
	natsHandler "github.com/piresc/socialclub/services/notification/handler/nats"
	"github.com/piresc/socialclub/services/notification/usecase"
)

func main() {
	appName := "notifier"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	mailer, err := ses.NewMailer(context.Background(), configs.Notification)
	if err != nil {
		zapLogger.Fatal("Failed to initialize SES mailer", logger.Err(err))
	}

	notificationUC := usecase.NewNotificationUC(mailer, configs)

	handler := natsHandler.NewHandler(notificationUC, natsClient, configs.NATS.QueueGroup)
	if err := handler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Only health endpoints are served
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"nats": natsClient,
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return handler.Close()
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
