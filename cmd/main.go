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

	cancelBookingHandler "github.com/glowcare/clinic-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/glowcare/clinic-booking/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/glowcare/clinic-booking/internal/api/handlers/create_customer"
	getAvailableSlotsHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_booking"
	getCustomerHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_customer"
	getCustomerBookingsHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_customer_bookings"
	getPortalBookingsHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_portal_bookings"
	getRevenueReportHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_revenue_report"
	getSalaryReportHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_salary_report"
	getStaffBookingsHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_staff_bookings"
	getStaffDayScheduleHandler "github.com/glowcare/clinic-booking/internal/api/handlers/get_staff_day_schedule"
	listCustomersHandler "github.com/glowcare/clinic-booking/internal/api/handlers/list_customers"
	updateBookingStatusHandler "github.com/glowcare/clinic-booking/internal/api/handlers/update_booking_status"
	updateCustomerHandler "github.com/glowcare/clinic-booking/internal/api/handlers/update_customer"
	"github.com/glowcare/clinic-booking/internal/api/middleware"
	"github.com/glowcare/clinic-booking/internal/config"
	"github.com/glowcare/clinic-booking/internal/domain"
	bookingRepo "github.com/glowcare/clinic-booking/internal/infra/storage/booking"
	customerRepo "github.com/glowcare/clinic-booking/internal/infra/storage/customer"
	scheduleRepo "github.com/glowcare/clinic-booking/internal/infra/storage/scheduleconfig"
	treatmentRepo "github.com/glowcare/clinic-booking/internal/infra/storage/treatment"
	bookingsService "github.com/glowcare/clinic-booking/internal/service/bookings"
	customersService "github.com/glowcare/clinic-booking/internal/service/customers"
	reportsService "github.com/glowcare/clinic-booking/internal/service/reports"
	createBookingUC "github.com/glowcare/clinic-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/glowcare/clinic-booking/internal/usecase/get_available_slots"
	getDayScheduleUC "github.com/glowcare/clinic-booking/internal/usecase/get_day_schedule"
	"github.com/glowcare/clinic-booking/pkg/dbmetrics"
	"github.com/glowcare/clinic-booking/pkg/logger"
	"github.com/glowcare/clinic-booking/pkg/metrics"
	"github.com/glowcare/clinic-booking/pkg/txmanager"
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

	log.Info("Starting GlowCare ClinicBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Оборачиваем соединение (с метриками или без)
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	treatmentRepository := treatmentRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Создаем конфигурацию рабочего окна клиники из config.toml,
	// если администратор ещё не настроил свою
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	err = scheduleRepository.EnsureClinicDefault(startupCtx, &domain.ScheduleWindow{
		StartHour:               cfg.Schedule.BusinessHoursStart,
		EndHour:                 cfg.Schedule.BusinessHoursEnd,
		MinutesPerPixel:         cfg.Schedule.MinutesPerPixel,
		ColumnScope:             domain.ColumnScope(cfg.Schedule.ColumnScope),
		SlotStepMinutes:         domain.DefaultSlotStepMinutes,
		MaxConcurrentBookings:   domain.DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	})
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to ensure clinic default schedule window: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	customerSvc := customersService.NewService(customerRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		treatmentRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		treatmentRepository,
		customerRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getStaffDaySchedule := getStaffDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	getPortalBookings := getPortalBookingsHandler.NewHandler(customerSvc, bookingSvc, log)
	getRevenueReport := getRevenueReportHandler.NewHandler(reportSvc, log)
	getSalaryReport := getSalaryReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Клиентский портал: бронирования клиента по непубличному токену
	api.HandleFunc("/portal/{token}/bookings", getPortalBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание мастера ---
	// Раскладка дня для календарной сетки
	protected.HandleFunc("/staff/{staffId}/schedule", getStaffDaySchedule.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	protected.HandleFunc("/staff/{staffId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирования мастера за период
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Отчёты ---
	protected.HandleFunc("/reports/revenue", getRevenueReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/salary", getSalaryReport.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
