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

	cancelBookingHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/confirm_booking"
	createCheckoutHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/create_checkout"
	getAvailabilityHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/get_catalog"
	getQuoteHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/get_quote"
	listBookingsHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/list_bookings"
	maintenanceDatesHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/maintenance_dates"
	validateDiscountHandler "github.com/caribeazul/CAB-BookingService/internal/api/handlers/validate_discount"
	"github.com/caribeazul/CAB-BookingService/internal/api/middleware"
	"github.com/caribeazul/CAB-BookingService/internal/config"
	bookingRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
	maintenanceRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/maintenance"
	geoipClient "github.com/caribeazul/CAB-BookingService/internal/integrations/geoip"
	mailerClient "github.com/caribeazul/CAB-BookingService/internal/integrations/mailer"
	paymentsClient "github.com/caribeazul/CAB-BookingService/internal/integrations/payments"
	bookingsService "github.com/caribeazul/CAB-BookingService/internal/service/bookings"
	maintenanceService "github.com/caribeazul/CAB-BookingService/internal/service/maintenance"
	confirmBookingUC "github.com/caribeazul/CAB-BookingService/internal/usecase/confirm_booking"
	createCheckoutUC "github.com/caribeazul/CAB-BookingService/internal/usecase/create_checkout"
	getAvailabilityUC "github.com/caribeazul/CAB-BookingService/internal/usecase/get_availability"
	getQuoteUC "github.com/caribeazul/CAB-BookingService/internal/usecase/get_quote"
	validateDiscountUC "github.com/caribeazul/CAB-BookingService/internal/usecase/validate_discount"
	"github.com/caribeazul/CAB-BookingService/pkg/dbmetrics"
	"github.com/caribeazul/CAB-BookingService/pkg/logger"
	"github.com/caribeazul/CAB-BookingService/pkg/metrics"
	"github.com/caribeazul/CAB-BookingService/pkg/simpletxmanager"
	"github.com/caribeazul/CAB-BookingService/pkg/txmanager"
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

	log.Info("Starting CAB-BookingService...")
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

	// Инициализируем интеграционных клиентов
	payments := paymentsClient.NewClient(cfg.Stripe.SecretKey, log)
	mailer := mailerClient.NewClient(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.OperatorEmail,
		log,
	)
	geoip := geoipClient.NewClient(
		cfg.GeoIP.URL,
		time.Duration(cfg.GeoIP.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Stripe, SendGrid from=%s, GeoIP=%s timeout=%ds)",
		cfg.SendGrid.FromEmail, cfg.GeoIP.URL, cfg.GeoIP.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		discountRepository    *discountRepo.Repository
		maintenanceRepository *maintenanceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		maintenanceRepository = maintenanceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		maintenanceRepository = maintenanceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	maintenanceSvc := maintenanceService.NewService(
		maintenanceRepository,
		log,
		maintenanceService.RealTimeProvider{},
	)

	// Инициализируем use cases
	getQuoteUseCase := getQuoteUC.NewUseCase(discountRepository, log)
	validateDiscountUseCase := validateDiscountUC.NewUseCase(discountRepository, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		maintenanceRepository,
		log,
	)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		bookingRepository,
		discountRepository,
		maintenanceRepository,
		payments,
		geoip,
		txMgr,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		discountRepository,
		payments,
		mailer,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	validateDiscount := validateDiscountHandler.NewHandler(validateDiscountUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	cancelBookingByOperator := cancelBookingHandler.NewOperatorHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	maintenanceDates := maintenanceDatesHandler.NewHandler(maintenanceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог: флот, направления, развлечения, часы работы, правила
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Доступные длительности и времена начала на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости без создания бронирования
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)

	// Проверка промокода
	api.HandleFunc("/discounts/validate", validateDiscount.Handle).Methods(http.MethodPost)

	// Оформление бронирования с платежным intent
	api.HandleFunc("/checkout", createCheckout.Handle).Methods(http.MethodPost)

	// Бронирование по ID (знание uuid и есть право доступа)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение оплаты после завершения платежа
	api.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования клиентом
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey, log))

	// Список бронирований с фильтрацией
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования оператором
	admin.HandleFunc("/bookings/{id}/cancel", cancelBookingByOperator.Handle).Methods(http.MethodPost)

	// Управление датами технического обслуживания
	admin.HandleFunc("/maintenance", maintenanceDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/maintenance", maintenanceDates.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/maintenance/{date}", maintenanceDates.HandleRemove).Methods(http.MethodDelete)

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
