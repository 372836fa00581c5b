package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
)

// scoreTwoStage runs classical screening and, when its confidence is below
// DeepAnalysisThreshold, refines it with the deep analyzer. A failing analyzer
// leaves the classical result in place. The simulated processing time covers
// the whole pipeline and is drawn once, whether or not the deep stage runs.
func (s *DetectionScorer) scoreTwoStage(ctx context.Context, tx model.Transaction) model.DetectionResultParams {
	tier := tx.Tier()
	features := ExtractFeatures(tx, s.rnd)

	fraudulent := s.rnd.Float64() < tier.FraudProbability()
	lo, hi := tier.ConfidenceRange(fraudulent)
	confidence := uniform(s.rnd, lo, hi)
	processing := uniform(s.rnd, minProcessingMs, maxProcessingMs)

	deep := false
	if confidence/100 < DeepAnalysisThreshold && s.analyzer != nil {
		certainty, err := s.analyzer.Analyze(ctx, features)
		if err == nil && math.IsNaN(certainty) {
			err = errors.New("analyzer returned NaN")
		}
		if err != nil {
			s.logger.WarnContext(ctx, "deep analysis failed, using classical result",
				slog.String("tier", tier.String()),
				slog.String("error", err.Error()),
			)
		} else {
			// Refinement moves confidence toward the top of the tier band,
			// never outside it.
			certainty = math.Max(0, math.Min(1, certainty))
			confidence += (hi - confidence) * certainty
			deep = true
		}
	}

	return model.DetectionResultParams{
		IsFraudulent:        fraudulent,
		Confidence:          confidence,
		ProcessingTime:      processing,
		QuantumContribution: uniform(s.rnd, minQuantumContribution, maxQuantumContribution),
		DeepAnalysis:        deep,
	}
}
