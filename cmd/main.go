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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignStaffHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/assign_staff"
	getBookingAssignmentsHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/get_booking_assignments"
	getEquipmentAvailabilityHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/get_equipment_availability"
	getRentalHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/get_rental"
	getStaffAssignmentHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/get_staff_assignment"
	getStaffAvailabilityHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/get_staff_availability"
	releaseStaffHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/release_staff"
	rescheduleStaffHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/reschedule_staff"
	reserveEquipmentHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/reserve_equipment"
	returnEquipmentHandler "github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers/return_equipment"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/middleware"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/config"
	catalogRepo "github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/memory"
	rentalRepo "github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/rental"
	staffingRepo "github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/staffing"
	bookingServiceClient "github.com/m04kA/DiveOps-ReservationEngine/internal/integrations/bookingservice"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/allocator"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/availability"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/schedule"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/keylock"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/logger"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/metrics"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/txmanager"
)

type catalogStore interface {
	reservation.Catalog
	availability.EquipmentCatalog
	schedule.StaffCatalog
}

type rentalStore interface {
	reservation.RentalRepository
	availability.RentalRepository
}

type staffStore interface {
	reservation.StaffAssignmentRepository
	schedule.StaffAssignmentRepository
}

type txManager interface {
	allocator.TransactionManager
	availability.TransactionManager
}

// backend хранилища и менеджер транзакций выбранного драйвера
type backend struct {
	catalog   catalogStore
	rentals   rentalStore
	staff     staffStore
	bookings  reservation.BookingReader
	txManager txManager
	close     func()
}

func main() {
	// Загружаем конфигурацию (CONFIG_PATH и .env переопределяют значения)
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DiveOps-ReservationEngine (storage=%s)...", cfg.Storage.Driver)

	// Метрики (если включены). Интерфейсы остаются nil, когда метрики выключены.
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		opMetrics        reservation.OperationMetrics
		lockMetrics      allocator.LockMetrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		opMetrics = metricsCollector
		lockMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	var store *backend
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store, err = newMemoryBackend(cfg)
	default:
		store, err = newPostgresBackend(cfg, dbRecorder, stopMetricsCh, log)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer store.close()

	// Сервисы распределения
	locker := keylock.New(cfg.Locks.WaitTimeout())
	alloc := allocator.NewAllocator(locker, store.txManager, lockMetrics, log)
	ledger := availability.NewLedger(store.catalog, store.rentals, store.txManager, log)
	detector := schedule.NewDetector(store.catalog, store.staff, store.txManager, log)

	reservationUseCase := reservation.NewUseCase(
		reservation.Repositories{
			Catalog:          store.catalog,
			Rentals:          store.rentals,
			StaffAssignments: store.staff,
		},
		store.bookings,
		alloc,
		ledger,
		detector,
		opMetrics,
		log,
	)

	// Инициализируем handlers
	reserveEquipment := reserveEquipmentHandler.NewHandler(reservationUseCase, log)
	returnEquipment := returnEquipmentHandler.NewHandler(reservationUseCase, log)
	getRental := getRentalHandler.NewHandler(reservationUseCase, log)
	assignStaff := assignStaffHandler.NewHandler(reservationUseCase, log)
	releaseStaff := releaseStaffHandler.NewHandler(reservationUseCase, log)
	rescheduleStaff := rescheduleStaffHandler.NewHandler(reservationUseCase, log)
	getStaffAssignment := getStaffAssignmentHandler.NewHandler(reservationUseCase, log)
	getEquipmentAvailability := getEquipmentAvailabilityHandler.NewHandler(reservationUseCase, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(reservationUseCase, log)
	getBookingAssignments := getBookingAssignmentsHandler.NewHandler(reservationUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Снаряжение ---
	api.HandleFunc("/rentals", reserveEquipment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{assignmentId}", getRental.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{assignmentId}/return", returnEquipment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/equipment/{equipmentId}/availability", getEquipmentAvailability.Handle).Methods(http.MethodGet)

	// --- Сотрудники ---
	api.HandleFunc("/staff-assignments", assignStaff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff-assignments/{assignmentId}", getStaffAssignment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff-assignments/{assignmentId}/release", releaseStaff.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/staff-assignments/{assignmentId}/schedule", rescheduleStaff.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings/{bookingId}/assignments", getBookingAssignments.Handle).Methods(http.MethodGet)

	var handler http.Handler = r
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
		)(handler)
	}
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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

func newPostgresBackend(cfg *config.Config, recorder dbmetrics.Recorder, stopCh <-chan struct{}, log *logger.Logger) (*backend, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrapped := dbmetrics.WrapWithDefault(db, recorder, stopCh)

	bookings := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Booking service client initialized (url=%s, timeout=%ds)", cfg.BookingService.URL, cfg.BookingService.Timeout)

	return &backend{
		catalog:   catalogRepo.NewRepository(wrapped),
		rentals:   rentalRepo.NewRepository(wrapped),
		staff:     staffingRepo.NewRepository(wrapped),
		bookings:  bookings,
		txManager: txmanager.NewTransactionManager(wrapped, txmanager.WithLockTimeout(cfg.Locks.DBLockTimeout())),
		close: func() {
			_ = db.Close()
		},
	}, nil
}

func newMemoryBackend(cfg *config.Config) (*backend, error) {
	seed, err := memory.LoadSeed(cfg.Storage.SeedPath)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	if err := seed.Apply(store); err != nil {
		return nil, err
	}

	return &backend{
		catalog:   store.Catalog(),
		rentals:   store.Rentals(),
		staff:     store.StaffAssignments(),
		bookings:  store.Bookings(),
		txManager: txmanager.NopManager{},
		close:     func() {},
	}, nil
}
