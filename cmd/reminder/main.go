package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acta_notification_service/internal/app"
	"acta_notification_service/internal/domain/entrega"
	"acta_notification_service/internal/domain/pool"
	"acta_notification_service/internal/infra/config"
	idb "acta_notification_service/internal/infra/database"
	"acta_notification_service/internal/infra/firebase"
	"acta_notification_service/internal/infra/logger"
	"acta_notification_service/internal/infra/msgraph"
	"acta_notification_service/internal/infra/scheduler"
)

func main() {
	fmt.Println("Acta reminder service starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	appLog := logger.Get()
	appLog.Infof("Configuration loaded. StoreDriver: %s, Environment: %s", cfg.StoreDriver, cfg.Environment)

	// Initialize store adapters
	var (
		entregaRepo entrega.Repository
		poolRepo    pool.Repository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatalf("FATAL: Could not connect to database: %v", err)
		}
		defer db.Close()
		entregaRepo = idb.NewPostgresEntregaRepository(db)
		poolRepo = idb.NewPostgresPoolRepository(db)
		appLog.Info("Postgres store initialized.")
	default:
		client := firebase.NewClient(cfg.FirebaseDatabaseURL, cfg.FirebaseAuthToken)
		entregaRepo = firebase.NewEntregaRepository(client)
		poolRepo = firebase.NewPoolRepository(client)
		appLog.Info("Realtime Database store initialized.")
	}

	// Initialize mail transport
	mailClient := msgraph.NewClient(msgraph.Config{
		TenantID:     cfg.AzureTenantID,
		ClientID:     cfg.AzureClientID,
		ClientSecret: cfg.AzureClientSecret,
		Sender:       cfg.GraphSenderMailbox,
	}, appLog)
	appLog.Info("Graph mail client initialized.")

	// Initialize application services
	resolver := pool.NewResolver(poolRepo, pool.DefaultRevisionPool, appLog)
	notifier := app.NewReminderNotifier(mailClient, appLog)
	reminderService := app.NewReminderService(entregaRepo, resolver, notifier, appLog)

	loc, err := time.LoadLocation(scheduler.HomeTimeZone)
	if err != nil {
		appLog.Fatalf("FATAL: Could not load timezone %s: %v", scheduler.HomeTimeZone, err)
	}
	remScheduler := scheduler.NewReminderScheduler(reminderService, appLog, cfg.CronSpecReminderCheck, loc)
	remScheduler.Start()

	appLog.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down application...")
	remScheduler.Stop()
	appLog.Info("Application shut down gracefully.")
}
