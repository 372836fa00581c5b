package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
)

// MeterName is the instrumentation scope of the detection instruments.
const MeterName = "github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/telemetry"

// DetectionMetrics implements port.DetectionMetrics with OpenTelemetry
// instruments.
type DetectionMetrics struct {
	detections metric.Int64Counter
	deep       metric.Int64Counter
	processing metric.Float64Histogram
	confidence metric.Float64Histogram
}

// NewDetectionMetrics registers the detection instruments on meter.
func NewDetectionMetrics(meter metric.Meter) (*DetectionMetrics, error) {
	detections, err := meter.Int64Counter("detections",
		metric.WithDescription("Scored transactions by tier, mode and verdict."))
	if err != nil {
		return nil, fmt.Errorf("create detections counter: %w", err)
	}

	deep, err := meter.Int64Counter("deep_analyses",
		metric.WithDescription("Two-stage detections that ran the deep-analysis stage."))
	if err != nil {
		return nil, fmt.Errorf("create deep analyses counter: %w", err)
	}

	processing, err := meter.Float64Histogram("simulated_processing_time",
		metric.WithDescription("Simulated processing time reported to clients."),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(100, 125, 150, 175, 200, 225, 250))
	if err != nil {
		return nil, fmt.Errorf("create processing time histogram: %w", err)
	}

	confidence, err := meter.Float64Histogram("confidence",
		metric.WithDescription("Reported confidence percentage."),
		metric.WithExplicitBucketBoundaries(75, 80, 85, 90, 95, 100))
	if err != nil {
		return nil, fmt.Errorf("create confidence histogram: %w", err)
	}

	return &DetectionMetrics{
		detections: detections,
		deep:       deep,
		processing: processing,
		confidence: confidence,
	}, nil
}

// RecordDetection records one detection result.
func (m *DetectionMetrics) RecordDetection(ctx context.Context, r *model.DetectionResult) {
	attrs := metric.WithAttributes(
		attribute.String("tier", r.Tier().String()),
		attribute.String("mode", r.Mode().Label()),
		attribute.Bool("fraudulent", r.IsFraudulent()),
	)

	m.detections.Add(ctx, 1, attrs)
	m.processing.Record(ctx, r.ProcessingTime(), attrs)
	m.confidence.Record(ctx, r.Confidence(), attrs)
	if r.DeepAnalysis() {
		m.deep.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", r.Tier().String())))
	}
}
