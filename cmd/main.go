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

	adminLoginHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/admin_login"
	createReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_availability"
	getCatalogHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_catalog"
	getReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_schedule"
	listReservationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_reservations"
	manageCatalogHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_catalog"
	reservationICSHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reservation_ics"
	updateReservationStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_reservation_status"
	updateScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/config"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	reservationsService "github.com/m04kA/SMC-SalonService/internal/service/reservations"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	createReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище по выбранному драйверу
	var (
		reservationRepository reservationsService.ReservationRepository
		availabilityResRepo   getAvailabilityUC.ReservationRepository
		createResRepo         createReservationUC.ReservationRepository
		scheduleRepository    scheduleService.ScheduleRepository
		serviceRepository     catalogService.ServiceRepository
		professionalRepo      catalogService.ProfessionalRepository
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		resRepo := reservationRepo.NewRepository(executor)
		reservationRepository = resRepo
		availabilityResRepo = resRepo
		createResRepo = resRepo
		scheduleRepository = scheduleRepo.NewRepository(executor)
		serviceRepository = catalogRepo.NewServiceRepository(executor)
		professionalRepo = catalogRepo.NewProfessionalRepository(executor)

	case config.StorageDriverMemory:
		log.Info("Using in-memory storage, data will not survive restarts")
		resRepo := reservationRepo.NewMemoryRepository()
		reservationRepository = resRepo
		availabilityResRepo = resRepo
		createResRepo = resRepo
		scheduleRepository = scheduleRepo.NewMemoryRepository()
		serviceRepository = catalogRepo.NewMemoryServiceRepository()
		professionalRepo = catalogRepo.NewMemoryProfessionalRepository()
	}

	// Менеджер сессий администратора
	authManager := auth.NewManager(
		cfg.Admin.Username,
		cfg.Admin.PasswordHash,
		cfg.Admin.TokenSecret,
		time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, scheduleRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, professionalRepo, log)

	// Инициализируем use cases
	leadTime := time.Duration(cfg.Booking.LeadTimeMinutes) * time.Minute
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		availabilityResRepo,
		scheduleRepository,
		leadTime,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(createResRepo, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	manageCatalog := manageCatalogHandler.NewHandler(catalogSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authManager, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	reservationICS := reservationICSHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский виджет записи)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание салона
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Каталог услуг и мастеров
	api.HandleFunc("/catalog/services", getCatalog.HandleServices).Methods(http.MethodGet)
	api.HandleFunc("/catalog/professionals", getCatalog.HandleProfessionals).Methods(http.MethodGet)

	// Создание заявки на запись
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer-токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authManager))

	// --- Заявки ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{id}/ics", reservationICS.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Каталог ---
	admin.HandleFunc("/catalog/services", manageCatalog.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/services/{id}", manageCatalog.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/services/{id}", manageCatalog.DeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/catalog/professionals", manageCatalog.CreateProfessional).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/professionals/{id}", manageCatalog.UpdateProfessional).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/professionals/{id}", manageCatalog.DeleteProfessional).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

	log.Info("Server stopped")
}
