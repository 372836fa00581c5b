package annealing

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
)

type weight struct {
	feature string
	value   float64
}

type interaction struct {
	a, b  string
	value float64
}

// Terms are evaluated in slice order so the floating point sum is stable.
var (
	linearWeights = []weight{
		{model.FeatureAmountRisk, 0.35},
		{model.FeatureCustomerHistory, 0.20},
		{model.FeatureMerchantReputation, 0.15},
		{model.FeatureLocationRisk, 0.10},
		{model.FeatureTimeOfDay, 0.05},
		{model.FeatureDeviceRisk, 0.10},
		{model.FeatureIPRisk, 0.05},
	}

	interactionWeights = []interaction{
		{model.FeatureAmountRisk, model.FeatureCustomerHistory, 0.15},
		{model.FeatureAmountRisk, model.FeatureMerchantReputation, 0.10},
		{model.FeatureCustomerHistory, model.FeatureLocationRisk, 0.08},
		{model.FeatureMerchantReputation, model.FeatureTimeOfDay, 0.05},
		{model.FeatureDeviceRisk, model.FeatureIPRisk, 0.12},
	}
)

// normalizer is the largest raw energy the weights can produce, rounded up.
const normalizer = 1.5

// StubAnnealer implements port.DeepAnalyzer with a weighted linear plus
// pairwise interaction model standing in for a quantum annealer.
type StubAnnealer struct {
	logger *slog.Logger
}

// NewStubAnnealer creates a new stub annealer. A nil logger uses slog.Default().
func NewStubAnnealer(logger *slog.Logger) *StubAnnealer {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubAnnealer{logger: logger}
}

// Analyze returns the normalised energy of the feature vector in [0,1].
func (a *StubAnnealer) Analyze(ctx context.Context, features model.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("annealing aborted: %w", err)
	}

	var energy float64
	for _, w := range linearWeights {
		v, err := feature(features, w.feature)
		if err != nil {
			return 0, err
		}
		energy += w.value * v
	}
	for _, w := range interactionWeights {
		x, err := feature(features, w.a)
		if err != nil {
			return 0, err
		}
		y, err := feature(features, w.b)
		if err != nil {
			return 0, err
		}
		energy += w.value * x * y
	}

	score := math.Max(0, math.Min(1, energy/normalizer))

	a.logger.DebugContext(ctx, "stub annealing completed",
		slog.Float64("energy", energy),
		slog.Float64("score", score),
	)

	return score, nil
}

func feature(f model.FeatureVector, name string) (float64, error) {
	v, ok := f.Get(name)
	if !ok {
		return 0, fmt.Errorf("unknown feature %q", name)
	}
	return v, nil
}
