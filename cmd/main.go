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

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	advanceStepHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/advance_step"
	createSessionHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/create_session"
	downloadPermitHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/download_permit"
	getSessionHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/get_session"
	resetSessionHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/reset_session"
	retreatStepHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/retreat_step"
	setApplicantKindHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/set_applicant_kind"
	submitPaymentHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/submit_payment"
	updateSectionHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/update_section"
	uploadDocumentHandler "github.com/szekelyhub/transit-permit-service/internal/api/handlers/upload_document"
	"github.com/szekelyhub/transit-permit-service/internal/api/middleware"
	"github.com/szekelyhub/transit-permit-service/internal/config"
	"github.com/szekelyhub/transit-permit-service/internal/infra/permitpdf"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
	applicationRepo "github.com/szekelyhub/transit-permit-service/internal/infra/storage/application"
	paymentGatewayClient "github.com/szekelyhub/transit-permit-service/internal/integrations/paymentgateway"
	wizardService "github.com/szekelyhub/transit-permit-service/internal/service/wizard"
	generatePermitUC "github.com/szekelyhub/transit-permit-service/internal/usecase/generate_permit"
	submitPaymentUC "github.com/szekelyhub/transit-permit-service/internal/usecase/submit_payment"
	"github.com/szekelyhub/transit-permit-service/pkg/dbmetrics"
	"github.com/szekelyhub/transit-permit-service/pkg/logger"
	"github.com/szekelyhub/transit-permit-service/pkg/metrics"
	"github.com/szekelyhub/transit-permit-service/pkg/simpletxmanager"
	"github.com/szekelyhub/transit-permit-service/pkg/txmanager"
)

// uuidGenerator issues session IDs.
type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting transit-permit-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Session store: Redis when configured, in-memory otherwise. A
	// failing Redis degrades to memory so the wizard stays usable.
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionStore wizardService.SessionStore

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisStore, err := sessionstore.NewRedisStore(redisClient, sessionTTL)
		if err != nil {
			log.Warn("Redis unavailable (%v), falling back to in-memory session store", err)
			sessionStore = sessionstore.NewMemoryStore()
		} else {
			log.Info("Using Redis session store at %s (ttl=%s)", cfg.Redis.Addr, sessionTTL)
			sessionStore = redisStore
		}
	} else {
		log.Info("Using in-memory session store")
		sessionStore = sessionstore.NewMemoryStore()
	}

	gatewayClient := paymentGatewayClient.NewClient(
		time.Duration(cfg.Payment.ProcessingDelayMS)*time.Millisecond,
		log,
	)
	log.Info("Payment gateway client initialized (processing_delay=%dms)", cfg.Payment.ProcessingDelayMS)

	var applicationRepository *applicationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		applicationRepository = applicationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		applicationRepository = applicationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	wizardSvc := wizardService.NewService(sessionStore, uuidGenerator{}, log)

	submitPaymentUseCase := submitPaymentUC.New(
		sessionStore,
		applicationRepository,
		gatewayClient,
		txMgr,
		&submitPaymentUC.RealTimeProvider{},
		log,
	)

	generatePermitUseCase := generatePermitUC.New(
		sessionStore,
		permitpdf.NewRenderer(log),
		&generatePermitUC.RealTimeProvider{},
		log,
	)

	createSession := createSessionHandler.NewHandler(wizardSvc, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	updateSection := updateSectionHandler.NewHandler(wizardSvc, log)
	setApplicantKind := setApplicantKindHandler.NewHandler(wizardSvc, log)
	uploadDocument := uploadDocumentHandler.NewHandler(wizardSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardSvc, log)
	retreatStep := retreatStepHandler.NewHandler(wizardSvc, log)
	resetSession := resetSessionHandler.NewHandler(wizardSvc, log)
	var paymentMetrics submitPaymentHandler.PaymentMetrics
	if cfg.Metrics.Enabled {
		paymentMetrics = metricsCollector
	}
	submitPayment := submitPaymentHandler.NewHandler(submitPaymentUseCase, paymentMetrics, log)
	downloadPermit := downloadPermitHandler.NewHandler(generatePermitUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/sections/{section}", updateSection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/applicant-kind", setApplicantKind.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/vehicle/registration-document", uploadDocument.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/retreat", retreatStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/payment", submitPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/permit", downloadPermit.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
