package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/port"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/service"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/annealing"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/config"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/fixtures"
	infrakafka "github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/kafka"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/messaging"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/telemetry"
	grpcpresentation "github.com/GopalChinta/Online-Fraud-Detection/internal/presentation/grpc"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/presentation/rest"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/kafka"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/observability"
)

const serviceName = "fraud-detection"

// app holds the wired servers and the resources they own.
type app struct {
	httpServer *http.Server
	grpcServer *grpcpresentation.Server
	closers    []func(context.Context) error
}

// newApp wires every adapter, use case and transport from cfg.
func newApp(cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	// Metrics.
	metrics, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, metrics.Provider.Shutdown)

	detectionMetrics, err := telemetry.NewDetectionMetrics(metrics.Meter(telemetry.MeterName))
	if err != nil {
		return nil, err
	}

	// Event publishing.
	var publisher port.EventPublisher
	readiness := []rest.ReadinessCheck{}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka producer: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return producer.Close() })
		publisher = infrakafka.NewPublisher(producer, cfg.KafkaTopic, logger)
		readiness = append(readiness, rest.ReadinessCheck{
			Name:  "kafka",
			Check: func(ctx context.Context) error { return kafka.Ping(ctx, cfg.Kafka) },
		})
		logger.Info("publishing detection events to kafka",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.KafkaTopic),
		)
	} else {
		publisher = messaging.NewLogPublisher(cfg.KafkaTopic, logger)
		logger.Info("kafka not configured, logging detection events")
	}

	// Benchmarks fixture.
	loader, err := fixtures.NewLoader(cfg.BenchmarksFile)
	if err != nil {
		return nil, err
	}
	readiness = append(readiness, rest.ReadinessCheck{
		Name: "benchmarks",
		Check: func(ctx context.Context) error {
			_, err := loader.Benchmarks(ctx)
			return err
		},
	})

	// Domain services.
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	scorer := service.NewDetectionScorer(
		service.NewLockedSource(service.NewSeededSource(seed)),
		annealing.NewStubAnnealer(logger),
		logger,
	)

	// Use cases.
	detectUC := usecase.NewDetectFraud(scorer, publisher, detectionMetrics, mode, logger)
	benchmarksUC := usecase.NewGetBenchmarks(loader)

	// gRPC.
	grpcHandler := grpcpresentation.NewFraudDetectionHandler(detectUC, benchmarksUC, logger)
	a.grpcServer, err = grpcpresentation.NewServer(grpcHandler, grpcpresentation.ServerConfig{
		Address:     cfg.GRPCAddress(),
		TLSCertFile: cfg.GRPCTLSCert,
		TLSKeyFile:  cfg.GRPCTLSKey,
		Reflection:  cfg.GRPCReflection,
	}, logger)
	if err != nil {
		return nil, err
	}

	// HTTP.
	router := rest.NewRouter(rest.RouterConfig{
		Detection: rest.NewDetectionHandler(detectUC, benchmarksUC, logger),
		Health:    rest.NewHealthHandler(serviceName, logger, readiness...),
		Metrics:   metrics.Handler,
		Logger:    logger,
		RateLimit: cfg.RateLimit,
	})
	a.httpServer = &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("detection scorer ready",
		slog.String("default_mode", mode.Label()),
		slog.Bool("fixed_seed", cfg.RandomSeed != 0),
	)

	return a, nil
}

// close releases the resources owned by the app in reverse order.
func (a *app) close(ctx context.Context, logger *slog.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}
}
