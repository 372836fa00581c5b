package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/event"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/port"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/service"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/events"
)

const tracerName = "github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"

// DetectFraud is the use case for scoring a single transaction.
type DetectFraud struct {
	scorer      service.Scorer
	publisher   port.EventPublisher
	metrics     port.DetectionMetrics
	logger      *slog.Logger
	tracer      trace.Tracer
	defaultMode valueobject.ScoringMode
}

// NewDetectFraud creates a new DetectFraud use case. publisher and metrics may
// be nil. A zero defaultMode falls back to two-stage scoring.
func NewDetectFraud(
	scorer service.Scorer,
	publisher port.EventPublisher,
	metrics port.DetectionMetrics,
	defaultMode valueobject.ScoringMode,
	logger *slog.Logger,
) *DetectFraud {
	if defaultMode.IsZero() {
		defaultMode = valueobject.ModeTwoStage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectFraud{
		scorer:      scorer,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		defaultMode: defaultMode,
	}
}

// DefaultMode returns the mode used when a request does not name one.
func (uc *DetectFraud) DefaultMode() valueobject.ScoringMode {
	return uc.defaultMode
}

// Execute validates the request, scores the transaction and publishes the
// resulting events. Validation failures are returned as
// *model.InvalidInputError; anything else is a *model.InternalError.
// Event publication is best-effort and never fails the detection.
func (uc *DetectFraud) Execute(ctx context.Context, req dto.DetectRequest, mode valueobject.ScoringMode) (dto.DetectionResponse, error) {
	if mode.IsZero() {
		mode = uc.defaultMode
	}

	ctx, span := uc.tracer.Start(ctx, "DetectFraud.Execute",
		trace.WithAttributes(attribute.String("fraud.mode", mode.Label())))
	defer span.End()

	// 1. Validate the transaction.
	tx, err := model.NewTransaction(req.ToInput())
	if err != nil {
		span.SetStatus(codes.Error, "invalid transaction")
		return dto.DetectionResponse{}, fmt.Errorf("failed to build transaction: %w", err)
	}
	span.SetAttributes(attribute.String("fraud.tier", tx.Tier().String()))

	// 2. Score it.
	result, err := uc.scorer.Score(ctx, tx, mode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scoring failed")
		var internal *model.InternalError
		if !errors.As(err, &internal) && !model.IsInvalidInput(err) {
			err = &model.InternalError{Op: "score transaction", Err: err}
		}
		return dto.DetectionResponse{}, fmt.Errorf("failed to score transaction: %w", err)
	}
	span.SetAttributes(
		attribute.Bool("fraud.flagged", result.IsFraudulent()),
		attribute.Bool("fraud.deep_analysis", result.DeepAnalysis()),
	)

	// 3. Record metrics.
	if uc.metrics != nil {
		uc.metrics.RecordDetection(ctx, result)
	}

	// 4. Publish domain events.
	uc.publish(ctx, tx, result)

	uc.logger.DebugContext(ctx, "transaction scored",
		slog.String("tier", result.Tier().String()),
		slog.String("mode", result.Mode().Label()),
		slog.Bool("fraudulent", result.IsFraudulent()),
		slog.Float64("confidence", result.Confidence()),
	)

	return dto.FromModel(result), nil
}

func (uc *DetectFraud) publish(ctx context.Context, tx model.Transaction, result *model.DetectionResult) {
	if uc.publisher == nil {
		return
	}

	detectionID := uuid.New()
	evts := []events.DomainEvent{event.NewDetectionCompleted(detectionID, tx, result)}
	if result.IsFraudulent() {
		evts = append(evts, event.NewFraudFlagged(detectionID, tx, result))
	}

	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish detection events",
			slog.String("detection_id", detectionID.String()),
			slog.String("error", err.Error()),
		)
	}
}
