package port

import (
	"context"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/events"
)

// DeepAnalyzer defines the port for the secondary analysis stage run when
// classical screening is not confident enough.
type DeepAnalyzer interface {
	// Analyze returns a certainty score in [0,1] for the given features.
	Analyze(ctx context.Context, features model.FeatureVector) (float64, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// DetectionMetrics records detection outcomes for monitoring.
type DetectionMetrics interface {
	RecordDetection(ctx context.Context, result *model.DetectionResult)
}

// BenchmarkSource supplies the static traditional vs enhanced comparison.
type BenchmarkSource interface {
	Benchmarks(ctx context.Context) (model.BenchmarkReport, error)
}
