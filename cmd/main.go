package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/millynails/MN-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/millynails/MN-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/millynails/MN-BookingService/internal/api/handlers/get_available_slots"
	getDayAppointmentsHandler "github.com/millynails/MN-BookingService/internal/api/handlers/get_day_appointments"
	triggerRemindersHandler "github.com/millynails/MN-BookingService/internal/api/handlers/trigger_reminders"
	"github.com/millynails/MN-BookingService/internal/api/middleware"
	"github.com/millynails/MN-BookingService/internal/config"
	"github.com/millynails/MN-BookingService/internal/infra/storage"
	appointmentRepo "github.com/millynails/MN-BookingService/internal/infra/storage/appointment"
	whatsappClient "github.com/millynails/MN-BookingService/internal/integrations/whatsapp"
	"github.com/millynails/MN-BookingService/internal/jobs"
	appointmentsService "github.com/millynails/MN-BookingService/internal/service/appointments"
	notificationsService "github.com/millynails/MN-BookingService/internal/service/notifications"
	createAppointmentUC "github.com/millynails/MN-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/millynails/MN-BookingService/internal/usecase/get_available_slots"
	"github.com/millynails/MN-BookingService/pkg/logger"
	"github.com/millynails/MN-BookingService/pkg/metrics"
	"github.com/millynails/MN-BookingService/pkg/txmanager"
)

const dbPoolSampleInterval = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Tune the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify connectivity
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Apply schema migrations
	if err := storage.RunMigrations(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database schema is up to date")

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBPool(db, dbPoolSampleInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Initialize the Twilio WhatsApp client
	twilioClient := whatsappClient.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
		time.Duration(cfg.Twilio.Timeout)*time.Second,
		log,
	)
	log.Info("Twilio WhatsApp client initialized (from=%s timeout=%ds)",
		cfg.Twilio.FromNumber, cfg.Twilio.Timeout)

	// Initialize repositories and the transaction manager
	repository := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Initialize services. A nil *metrics.Metrics must not reach the
	// MetricsRecorder interfaces, so the enabled check happens here.
	var notifierMetrics notificationsService.MetricsRecorder
	var bookingMetrics createAppointmentUC.MetricsRecorder
	if cfg.Metrics.Enabled {
		notifierMetrics = metricsCollector
		bookingMetrics = metricsCollector
	}

	notifierSvc := notificationsService.NewService(
		twilioClient,
		repository,
		cfg.Twilio.AdminPhone,
		notifierMetrics,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(repository, log)

	// Initialize use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repository,
		txMgr,
		notifierSvc,
		bookingMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, log)

	// Initialize handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	triggerReminders := triggerRemindersHandler.NewHandler(notifierSvc, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Reminder trigger, guarded by the shared secret
	if cfg.Reminders.Enabled {
		reminders := api.PathPrefix("/reminders").Subrouter()
		reminders.Use(middleware.BearerAuth(cfg.Reminders.Secret))
		reminders.HandleFunc("/run", triggerReminders.Handle).Methods(http.MethodPost)
	}

	// Start the reminder scheduler
	var scheduler *jobs.Scheduler
	if cfg.Reminders.Enabled {
		scheduler, err = jobs.NewScheduler(cfg.Reminders.Schedule, notifierSvc, log)
		if err != nil {
			log.Fatal("Failed to initialize reminder scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Reminder scheduler running with spec %q", cfg.Reminders.Schedule)
	}

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
