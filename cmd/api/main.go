package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kdarko/sikaflow/internal/pkg/config"
	"github.com/kdarko/sikaflow/internal/pkg/database"
	"github.com/kdarko/sikaflow/internal/pkg/health"
	"github.com/kdarko/sikaflow/internal/pkg/httpclient"
	"github.com/kdarko/sikaflow/internal/pkg/logger"
	natspkg "github.com/kdarko/sikaflow/internal/pkg/nats"
	"github.com/kdarko/sikaflow/internal/pkg/scheduler"
	"github.com/kdarko/sikaflow/internal/pkg/server"

	notifyhttp "github.com/kdarko/sikaflow/services/notify/handler/http"
	notifynats "github.com/kdarko/sikaflow/services/notify/handler/nats"
	notifygw "github.com/kdarko/sikaflow/services/notify/gateway"
	notifyrepo "github.com/kdarko/sikaflow/services/notify/repository"
	notifyuc "github.com/kdarko/sikaflow/services/notify/usecase"

	ratehttp "github.com/kdarko/sikaflow/services/rate/handler/http"
	rategw "github.com/kdarko/sikaflow/services/rate/gateway"
	raterepo "github.com/kdarko/sikaflow/services/rate/repository"
	rateuc "github.com/kdarko/sikaflow/services/rate/usecase"

	txhttp "github.com/kdarko/sikaflow/services/transaction/handler/http"
	txgw "github.com/kdarko/sikaflow/services/transaction/gateway"
	txrepo "github.com/kdarko/sikaflow/services/transaction/repository"
	txuc "github.com/kdarko/sikaflow/services/transaction/usecase"

	userrepo "github.com/kdarko/sikaflow/services/user/repository"

	vendorhttp "github.com/kdarko/sikaflow/services/vendorsvc/handler/http"
	vendorgw "github.com/kdarko/sikaflow/services/vendorsvc/gateway"
	vendorrepo "github.com/kdarko/sikaflow/services/vendorsvc/repository"
	vendoruc "github.com/kdarko/sikaflow/services/vendorsvc/usecase"
)

func main() {
	appName := "sikaflow-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Shared user repository
	userRepo := userrepo.NewUserRepository(db)

	// Rate service
	marketClient := httpclient.NewClient(configs.Rates.SourceURL, 10*time.Second)
	cacheTTL := time.Duration(configs.Rates.MarketCacheTTLSeconds) * time.Second
	rateRepo := raterepo.NewRateRepository(db, redisClient, cacheTTL)
	alertRepo := raterepo.NewAlertRepository(db)
	marketGW := rategw.NewMarketSourceGW(marketClient)
	rateEventGW := rategw.NewEventGW(natsClient)
	rateUC := rateuc.NewRateUC(configs, rateRepo, alertRepo, marketGW, rateEventGW)

	// Transaction service
	transactionRepo := txrepo.NewTransactionRepository(db)
	configRepo := txrepo.NewConfigRepository(db)
	txEventGW := txgw.NewEventGW(natsClient)
	transactionUC := txuc.NewTransactionUC(configs, transactionRepo, configRepo, userRepo, rateUC, txEventGW)

	// Vendor service
	poolRepo := vendorrepo.NewPoolRepository(db)
	presenceRepo := vendorrepo.NewPresenceRepository(redisClient)
	vendorEventGW := vendorgw.NewEventGW(natsClient)
	vendorUC := vendoruc.NewVendorUC(poolRepo, presenceRepo, userRepo, vendorEventGW)

	// Notify service
	notificationRepo := notifyrepo.NewNotificationRepository(db)
	auditRepo := notifyrepo.NewAuditRepository(db)
	smsClient := httpclient.NewClient(configs.SMS.GatewayURL, 10*time.Second)
	smsGW := notifygw.NewSMSGW(smsClient, configs.SMS)
	emailGW := notifygw.NewLogEmailGW()
	notifyUC := notifyuc.NewNotifyUC(notificationRepo, auditRepo, userRepo, smsGW, emailGW)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// NATS consumers
	consumer := notifynats.NewConsumer(natsClient, notifyUC)
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("Failed to start notify consumer", logger.Err(err))
	}
	defer consumer.Stop()

	// Rate-alert sweep: hourly plus one run at startup.
	sched := scheduler.New(scheduler.RealClock{})
	sched.Register(scheduler.Task{
		Name:       "rate-alert-sweep",
		Interval:   time.Duration(configs.Rates.AlertIntervalMinutes) * time.Minute,
		RunAtStart: true,
		Fn: func(ctx context.Context) {
			if err := rateUC.CheckAlerts(ctx); err != nil {
				logger.Error("Rate alert sweep failed", logger.Err(err))
			}
		},
	})
	sched.Start(ctx)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, postgresClient, redisClient)

	// Register service routes
	ratehttp.NewRateHandler(rateUC, configs.JWT).RegisterRoutes(e)
	txhttp.NewTransactionHandler(transactionUC, configs.JWT).RegisterRoutes(e)
	vendorhttp.NewVendorHandler(vendorUC, configs.JWT).RegisterRoutes(e)
	notifyhttp.NewNotifyHandler(notifyUC, configs.JWT).RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
