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

	adminLoginHandler "github.com/avkostin/studio-booking/internal/api/handlers/admin_login"
	cancelBookingHandler "github.com/avkostin/studio-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avkostin/studio-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/avkostin/studio-booking/internal/api/handlers/get_booking"
	getConfigHandler "github.com/avkostin/studio-booking/internal/api/handlers/get_config"
	getFreeSlotsHandler "github.com/avkostin/studio-booking/internal/api/handlers/get_free_slots"
	listBookingsHandler "github.com/avkostin/studio-booking/internal/api/handlers/list_bookings"
	"github.com/avkostin/studio-booking/internal/api/middleware"
	"github.com/avkostin/studio-booking/internal/auth"
	"github.com/avkostin/studio-booking/internal/config"
	bookingRepo "github.com/avkostin/studio-booking/internal/infra/storage/booking"
	bookingsService "github.com/avkostin/studio-booking/internal/service/bookings"
	createBookingUC "github.com/avkostin/studio-booking/internal/usecase/create_booking"
	getFreeSlotsUC "github.com/avkostin/studio-booking/internal/usecase/get_free_slots"
	"github.com/avkostin/studio-booking/pkg/dbmetrics"
	"github.com/avkostin/studio-booking/pkg/logger"
	"github.com/avkostin/studio-booking/pkg/metrics"
	"github.com/avkostin/studio-booking/pkg/simpletxmanager"
	"github.com/avkostin/studio-booking/pkg/txmanager"
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

	log.Info("Starting studio-booking...")
	log.Info("Configuration loaded from config.toml")

	rules, err := cfg.ToScheduleRules()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Schedule: %s, working days %v, %s-%s, slot %d min",
		cfg.Schedule.Timezone, rules.WorkingWeekdays, rules.WorkStart, rules.WorkEnd, rules.SlotMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Менеджер административных сессий
	sessions, err := auth.NewSessionManager(cfg.Admin.SessionSecret, cfg.SessionTTL())
	if err != nil {
		log.Fatal("Failed to initialize session manager: %v", err)
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(bookingRepository, rules, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, rules, txMgr, log)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(bookingRepository, rules, log)

	// Инициализируем handlers
	getConfig := getConfigHandler.NewHandler(rules, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(sessions, adminLoginHandler.Config{
		AdminPassword: cfg.Admin.Password,
		CookieName:    cfg.Admin.SessionCookieName,
		SecureCookie:  cfg.Admin.SecureCookie,
		SessionMaxAge: int(cfg.SessionTTL().Seconds()),
	}, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Правила расписания для клиента
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/session/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют cookie сессии администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminSession(sessions, cfg.Admin.SessionCookieName, log))

	// Список бронирований на дату
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Карточка бронирования
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
		time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
