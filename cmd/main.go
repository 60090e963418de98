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

	addTimeLabelHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/add_time_label"
	cancelReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/cancel_reservation"
	getDashboardHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_dashboard"
	getReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_schedule"
	listReservationsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_reservations"
	listWeekSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_week_slots"
	reserveSlotHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/reserve_slot"
	toggleSlotHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/toggle_slot"
	updateScheduleWindowHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_schedule_window"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/slot"
	reservationsService "github.com/m04kA/SMC-AgendaService/internal/service/reservations"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
	cancelReservationUC "github.com/m04kA/SMC-AgendaService/internal/usecase/cancel_reservation"
	listWeekSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/list_week_slots"
	reserveSlotUC "github.com/m04kA/SMC-AgendaService/internal/usecase/reserve_slot"
	toggleSlotUC "github.com/m04kA/SMC-AgendaService/internal/usecase/toggle_slot"
	"github.com/m04kA/SMC-AgendaService/migrations"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

// systemTime отдаёт реальное время в сервисы
type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}

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

	log.Info("Starting SMC-AgendaService...")
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

	// Применяем миграции (если включено)
	if cfg.Database.RunMigrations {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrations.Version(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to get schema version: %v", err)
		}
		log.Info("Database migrations applied, schema version=%d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс transaction manager, используется в usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemTime{}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		clock,
		cfg.Service.PublicOrigin,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		slotRepository,
		clock,
		log,
	)

	// Инициализируем use cases
	listWeekSlotsUseCase := listWeekSlotsUC.NewUseCase(
		slotRepository,
		scheduleRepository,
		log,
	)
	toggleSlotUseCase := toggleSlotUC.NewUseCase(
		slotRepository,
		txMgr,
		log,
	)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		slotRepository,
		reservationRepository,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listWeekSlots := listWeekSlotsHandler.NewHandler(listWeekSlotsUseCase, log)
	toggleSlot := toggleSlotHandler.NewHandler(toggleSlotUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	addTimeLabel := addTimeLabelHandler.NewHandler(scheduleSvc, log)
	updateScheduleWindow := updateScheduleWindowHandler.NewHandler(scheduleSvc, log)

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
	// PUBLIC ROUTES (страница записи клиента, без аутентификации)
	// ============================================================

	// Недельная сетка слотов
	api.HandleFunc("/professionals/{professionalId}/slots",
		listWeekSlots.Handle).Methods(http.MethodGet)

	// Запись клиента на свободный слот
	api.HandleFunc("/professionals/{professionalId}/reservations",
		reserveSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (кабинет профессионала, требуют X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Переключение слота blocked <-> free
	protected.HandleFunc("/professionals/{professionalId}/slots/{slotId}/toggle",
		toggleSlot.Handle).Methods(http.MethodPatch)

	// --- Брони ---
	// Список броней
	protected.HandleFunc("/professionals/{professionalId}/reservations",
		listReservations.Handle).Methods(http.MethodGet)

	// Бронь по ID
	protected.HandleFunc("/professionals/{professionalId}/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони (освобождает слот)
	protected.HandleFunc("/professionals/{professionalId}/reservations/{reservationId}/cancel",
		cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Кабинет ---
	// Сводка главного экрана
	protected.HandleFunc("/professionals/{professionalId}/dashboard",
		getDashboard.Handle).Methods(http.MethodGet)

	// Конфигурация расписания
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Добавление временной метки в сетку
	protected.HandleFunc("/professionals/{professionalId}/schedule/time-labels",
		addTimeLabel.Handle).Methods(http.MethodPost)

	// Смена окна месяц/год
	protected.HandleFunc("/professionals/{professionalId}/schedule/window",
		updateScheduleWindow.Handle).Methods(http.MethodPut)

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
