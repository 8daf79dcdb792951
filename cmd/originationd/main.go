package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meridianbank/origination/internal/application/usecase"
	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/service"
	"github.com/meridianbank/origination/internal/infrastructure/adapter"
	"github.com/meridianbank/origination/internal/infrastructure/config"
	"github.com/meridianbank/origination/internal/infrastructure/messaging"
	pgRepo "github.com/meridianbank/origination/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/meridianbank/origination/internal/presentation/grpc"
	"github.com/meridianbank/origination/internal/presentation/rest"
	"github.com/meridianbank/origination/pkg/auth"
	pkgkafka "github.com/meridianbank/origination/pkg/kafka"
	"github.com/meridianbank/origination/pkg/observability"
	pkgpostgres "github.com/meridianbank/origination/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting origination-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Load the underwriting policy table.
	policies := policy.Default()
	if cfg.PolicyFile != "" {
		loaded, err := policy.LoadFile(cfg.PolicyFile)
		if err != nil {
			logger.Error("failed to load policy file", "path", cfg.PolicyFile, "error", err)
			os.Exit(1)
		}
		policies = loaded
		logger.Info("loaded policy overrides", "path", cfg.PolicyFile)
	}

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	appRepo := pgRepo.NewApplicationRepo(pool)
	sequence := pgRepo.NewNumberSequence(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic)
	customers := adapter.NewStubCustomerDirectory()
	documents := adapter.NewStubDocumentChecker()

	// Domain services.
	eligibility := service.NewEligibilityService(policies)
	classifier := service.NewRiskClassifier(policies)

	// Wire use cases.
	createUC := usecase.NewCreateApplicationUseCase(appRepo, publisher, eligibility, logger)
	updateDraftUC := usecase.NewUpdateDraftUseCase(appRepo, eligibility, logger)
	submitUC := usecase.NewSubmitApplicationUseCase(appRepo, sequence, publisher, eligibility, logger)
	advanceUC := usecase.NewAdvanceReviewUseCase(appRepo, documents, publisher, logger)
	requestInfoUC := usecase.NewRequestInfoUseCase(appRepo, publisher, logger)
	resolveInfoUC := usecase.NewResolveInfoUseCase(appRepo, publisher, logger)
	assessUC := usecase.NewAssessApplicationUseCase(appRepo, customers, publisher, eligibility, classifier, policies, logger)
	approveUC := usecase.NewApproveApplicationUseCase(appRepo, publisher, eligibility, logger)
	rejectUC := usecase.NewRejectApplicationUseCase(appRepo, publisher, logger)
	disburseUC := usecase.NewDisburseApplicationUseCase(appRepo, publisher, logger)
	cancelUC := usecase.NewCancelApplicationUseCase(appRepo, publisher, logger)
	getUC := usecase.NewGetApplicationUseCase(appRepo)
	listUC := usecase.NewListApplicationsUseCase(appRepo)
	scheduleUC := usecase.NewComputeScheduleUseCase()

	// JWT service (validation-only against the gateway's signing secret).
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: os.Getenv("JWT_ISSUER"),
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewOriginationHandler(
		createUC, updateDraftUC, submitUC, advanceUC,
		requestInfoUC, resolveInfoUC, assessUC,
		approveUC, rejectUC, disburseUC, cancelUC,
		getUC, listUC, scheduleUC,
		logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("origination-service stopped")
}
