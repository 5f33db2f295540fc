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

	createAppointmentHandler "github.com/vibracionalta/VA-AgendaService/internal/api/handlers/create_appointment"
	getAvailableDaysHandler "github.com/vibracionalta/VA-AgendaService/internal/api/handlers/get_available_days"
	manageAppointmentsHandler "github.com/vibracionalta/VA-AgendaService/internal/api/handlers/manage_appointments"
	uploadProofHandler "github.com/vibracionalta/VA-AgendaService/internal/api/handlers/upload_proof"
	"github.com/vibracionalta/VA-AgendaService/internal/api/middleware"
	"github.com/vibracionalta/VA-AgendaService/internal/config"
	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	appointmentRepo "github.com/vibracionalta/VA-AgendaService/internal/infra/storage/appointment"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/calendarfeed"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/mediastorage"
	appointmentsService "github.com/vibracionalta/VA-AgendaService/internal/service/appointments"
	createAppointmentUC "github.com/vibracionalta/VA-AgendaService/internal/usecase/create_appointment"
	getAvailableDaysUC "github.com/vibracionalta/VA-AgendaService/internal/usecase/get_available_days"
	"github.com/vibracionalta/VA-AgendaService/pkg/dbmetrics"
	"github.com/vibracionalta/VA-AgendaService/pkg/logger"
	"github.com/vibracionalta/VA-AgendaService/pkg/metrics"
	"github.com/vibracionalta/VA-AgendaService/pkg/simpletxmanager"
	"github.com/vibracionalta/VA-AgendaService/pkg/txmanager"
	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VA-AgendaService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializamos métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conectamos a la base de datos
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configuramos el connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verificamos la conexión
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Inicializamos los clientes de integraciones
	calendarClient := calendarfeed.NewClient(
		cfg.Calendar.URL,
		cfg.Calendar.Token,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	mediaClient, err := mediastorage.NewClient(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize media storage client: %v", err)
	}
	log.Info("Integration clients initialized (Calendar=%s timeout=%ds, Cloudinary folder=%s)",
		cfg.Calendar.URL, cfg.Calendar.Timeout, cfg.Cloudinary.Folder)

	// Construimos el motor de disponibilidad desde la configuración
	loc, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	schedule, err := buildSchedule(cfg.Schedule)
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}
	engine := getAvailableDaysUC.NewEngine(
		schedule,
		domain.NewHolidaySet(cfg.Schedule.Holidays),
		loc,
		cfg.Schedule.HorizonDays,
		cfg.Schedule.DurationMinutes,
	)
	log.Info("Availability engine initialized (tz=%s, horizon=%d days, duration=%d min)",
		cfg.Schedule.Timezone, cfg.Schedule.HorizonDays, cfg.Schedule.DurationMinutes)

	// Inicializamos el repositorio (con métricas o sin ellas)
	var appointmentRepository *appointmentRepo.Repository

	// Interfaz del transaction manager usada por los use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Inicializamos servicios y use cases
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		calendarClient,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(engine, calendarClient, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		engine,
		appointmentRepository,
		calendarClient,
		txMgr,
		log,
	)

	// Inicializamos handlers
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	manageAppointments := manageAppointmentsHandler.NewHandler(appointmentSvc, log)
	uploadProof := uploadProofHandler.NewHandler(mediaClient, log)

	// Configuramos el router
	r := mux.NewRouter()

	// Metrics middleware (si las métricas están habilitadas)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Endpoint de métricas Prometheus
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Prefijo del API, con CORS para la SPA
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Días disponibles para una hora (POST) y franjas legadas (GET)
	api.HandleFunc("/dias-disponibles", getAvailableDays.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/dias-disponibles", getAvailableDays.HandleLegacy).Methods(http.MethodGet)

	// Creación de cita
	api.HandleFunc("/citas", createAppointment.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Listado y cancelación de citas por email
	api.HandleFunc("/gestionar-citas", manageAppointments.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Subida del comprobante de pago
	api.HandleFunc("/comprobantes", uploadProof.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Creamos el servidor HTTP
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

	// Esperamos la señal de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Detenemos la recolección de métricas del connection pool
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

// buildSchedule convierte las plantillas de la configuración al modelo de dominio
func buildSchedule(cfg config.ScheduleConfig) (domain.WeeklySchedule, error) {
	weekday, err := parseTimes(cfg.WeekdayTimes)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("weekday_times: %w", err)
	}
	saturday, err := parseTimes(cfg.SaturdayTimes)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("saturday_times: %w", err)
	}
	return domain.WeeklySchedule{
		Weekday:  weekday,
		Saturday: saturday,
	}, nil
}

func parseTimes(raw []string) ([]types.TimeString, error) {
	parsed := make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", s, err)
		}
		parsed = append(parsed, t)
	}
	return parsed, nil
}
