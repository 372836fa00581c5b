package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/port"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

const (
	minProcessingMs = 100.0
	maxProcessingMs = 250.0

	minQuantumContribution = 60.0
	maxQuantumContribution = 85.0

	// DeepAnalysisThreshold is the classical confidence, as a fraction, below
	// which the deep-analysis stage runs.
	DeepAnalysisThreshold = 0.85
)

// DetectionScorer produces mock fraud verdicts from tiered probabilities.
// Every random value comes from the injected RandomSource, so a seeded source
// makes results reproducible.
type DetectionScorer struct {
	rnd      RandomSource
	analyzer port.DeepAnalyzer
	logger   *slog.Logger
}

// NewDetectionScorer creates a DetectionScorer. A nil analyzer disables the
// deep-analysis stage; two-stage scoring then returns the classical result.
func NewDetectionScorer(rnd RandomSource, analyzer port.DeepAnalyzer, logger *slog.Logger) *DetectionScorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectionScorer{
		rnd:      rnd,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Score evaluates a transaction in the requested mode.
func (s *DetectionScorer) Score(ctx context.Context, tx model.Transaction, mode valueobject.ScoringMode) (*model.DetectionResult, error) {
	if s.rnd == nil {
		return nil, &model.InternalError{Op: "score transaction", Err: fmt.Errorf("no random source configured")}
	}

	var params model.DetectionResultParams
	switch {
	case mode.Equal(valueobject.ModeQuick):
		params = s.scoreQuick(tx.Tier())
	case mode.Equal(valueobject.ModeTwoStage):
		params = s.scoreTwoStage(ctx, tx)
	default:
		return nil, &model.InternalError{Op: "score transaction", Err: fmt.Errorf("unsupported scoring mode %q", mode.String())}
	}
	params.Tier = tx.Tier()
	params.Mode = mode

	return model.NewDetectionResult(params)
}

// scoreQuick draws verdict, confidence, processing time and quantum
// contribution, in that order.
func (s *DetectionScorer) scoreQuick(tier valueobject.Tier) model.DetectionResultParams {
	fraudulent := s.rnd.Float64() < tier.FraudProbability()
	lo, hi := tier.ConfidenceRange(fraudulent)

	return model.DetectionResultParams{
		IsFraudulent:        fraudulent,
		Confidence:          uniform(s.rnd, lo, hi),
		ProcessingTime:      uniform(s.rnd, minProcessingMs, maxProcessingMs),
		QuantumContribution: uniform(s.rnd, minQuantumContribution, maxQuantumContribution),
	}
}
