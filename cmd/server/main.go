package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "mietpark-backend/internal/api/http"
	"mietpark-backend/internal/config"
	"mietpark-backend/internal/jobs"
	"mietpark-backend/internal/logger"
	"mietpark-backend/internal/metrics"
	"mietpark-backend/internal/repository/postgres"
	"mietpark-backend/internal/scheduler"
	"mietpark-backend/internal/service"
)

func main() {
	// .env is optional; real deployments configure via YAML + environment
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Mietpark Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	m := metrics.New()

	masterDataSvc := service.NewMasterDataService(
		store.CompanyRepository,
		store.YardRepository,
		store.CustomerRepository,
	)
	deviceSvc := service.NewDeviceService(store.DeviceRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.DeviceRepository,
		store.CustomerRepository,
		store.PositionRepository,
	)
	invoiceSvc := service.NewInvoiceService(store.InvoiceRepository, store.RentalRepository)
	maintenanceSvc := service.NewMaintenanceService(
		store.MaintenanceRepository,
		store.MeterReadingRepository,
		store.DeviceRepository,
	)
	reportSvc := service.NewReportService(
		store.RentalRepository,
		store.DeviceRepository,
		store.PositionRepository,
	)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		MasterData:     masterDataSvc,
		Devices:        deviceSvc,
		Rentals:        rentalSvc,
		Invoices:       invoiceSvc,
		Maintenance:    maintenanceSvc,
		Reports:        reportSvc,
		Metrics:        m,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	jobRunner := jobs.NewJobRunner(store, &jobs.Services{
		Reports: reportSvc,
	}, cfg, m)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
