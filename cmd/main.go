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

	addExceptionHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/add_exception"
	checkSlotHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/check_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/get_schedule"
	removeExceptionHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/remove_exception"
	updateSettingsHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/update_settings"
	updateTemplateHandler "github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers/update_template"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/config"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/infra/cache"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
	orderRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/order"
	conflictsService "github.com/m04kA/SMC-AffiliateScheduler/internal/service/conflicts"
	scheduleService "github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule"
	checkBookingUC "github.com/m04kA/SMC-AffiliateScheduler/internal/usecase/check_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AffiliateScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/logger"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/metrics"
)

// scheduleCacheSize размер LRU-кэша аффилиатов
const scheduleCacheSize = 1024

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

	log.Info("Starting SMC-AffiliateScheduler...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		affiliateRepository *affiliateRepo.Repository
		orderRepository     *orderRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		affiliateRepository = affiliateRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
	} else {
		affiliateRepository = affiliateRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
	}

	// Оборачиваем репозиторий аффилиатов в LRU-кэш:
	// расписание читается на каждый запрос календаря и проверку слота
	cachedAffiliates, err := cache.NewAffiliateCache(affiliateRepository, scheduleCacheSize, log)
	if err != nil {
		log.Fatal("Failed to initialize affiliate cache: %v", err)
	}
	log.Info("Affiliate schedule cache initialized (size=%d)", scheduleCacheSize)

	// Инициализируем сервисы
	conflictsSvc := conflictsService.NewService(orderRepository, log)
	scheduleSvc := scheduleService.NewService(cachedAffiliates, conflictsSvc, log)

	// Инициализируем use cases
	checkBookingUseCase := checkBookingUC.NewUseCase(cachedAffiliates, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(cachedAffiliates, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateTemplate := updateTemplateHandler.NewHandler(scheduleSvc, log)
	addException := addExceptionHandler.NewHandler(scheduleSvc, log)
	removeException := removeExceptionHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkBookingUseCase, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступных дат для бронирования
	r.HandleFunc("/affiliates/{affiliateId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка доступности одного слота
	r.HandleFunc("/affiliates/{affiliateId}/available-slots/check",
		checkSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание аффилиата ---
	// Полное расписание
	protected.HandleFunc("/affiliates/{affiliateId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Обновление недельного шаблона
	protected.HandleFunc("/affiliates/{affiliateId}/schedule/template", updateTemplate.Handle).Methods(http.MethodPut)

	// Добавление исключения по дате
	protected.HandleFunc("/affiliates/{affiliateId}/schedule/exceptions", addException.Handle).Methods(http.MethodPost)

	// Удаление исключения
	protected.HandleFunc("/affiliates/{affiliateId}/schedule/exceptions/{exceptionId}",
		removeException.Handle).Methods(http.MethodDelete)

	// Настройки окна бронирования
	protected.HandleFunc("/affiliates/{affiliateId}/schedule/settings", updateSettings.Handle).Methods(http.MethodPut)

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
