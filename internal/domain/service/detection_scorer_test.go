package service_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/service"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// sequenceSource replays a fixed list of values.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next]
	s.next++
	return v
}

type mockAnalyzer struct {
	err      error
	score    float64
	calls    int
	features []model.FeatureVector
}

func (m *mockAnalyzer) Analyze(_ context.Context, f model.FeatureVector) (float64, error) {
	m.calls++
	m.features = append(m.features, f)
	return m.score, m.err
}

func newTx(t *testing.T, amount string) model.Transaction {
	t.Helper()
	tx, err := model.NewTransaction(model.TransactionInput{
		Amount:     amount,
		MerchantID: "MERCH-8765",
		CustomerID: "CUST-1234",
		Location:   "New York, USA",
		DeviceID:   "DEV-5678",
		IPAddress:  "192.168.1.1",
		Timestamp:  "2023-03-15T14:30:00Z",
	})
	require.NoError(t, err)
	return tx
}

var tierAmounts = []struct {
	tier   valueobject.Tier
	amount string
}{
	{valueobject.TierLow, "250.00"},
	{valueobject.TierMedium, "1250.00"},
	{valueobject.TierHigh, "7500.00"},
}

func TestDetectionScorer_QuickDrawOrder(t *testing.T) {
	rnd := &sequenceSource{values: []float64{0.29, 0.5, 0.0, 0.5}}
	scorer := service.NewDetectionScorer(rnd, nil, slog.Default())

	r, err := scorer.Score(context.Background(), newTx(t, "5000.01"), valueobject.ModeQuick)
	require.NoError(t, err)

	assert.True(t, r.IsFraudulent())
	assert.InDelta(t, 90.0, r.Confidence(), 1e-9)
	assert.InDelta(t, 100.0, r.ProcessingTime(), 1e-9)
	assert.InDelta(t, 72.5, r.QuantumContribution(), 1e-9)
	assert.Equal(t, 4, rnd.next)
	assert.True(t, valueobject.TierHigh.Equal(r.Tier()))
	assert.False(t, r.DeepAnalysis())
}

func TestDetectionScorer_QuickRanges(t *testing.T) {
	for _, tt := range tierAmounts {
		t.Run(tt.tier.String(), func(t *testing.T) {
			scorer := service.NewDetectionScorer(service.NewSeededSource(7), nil, slog.Default())
			tx := newTx(t, tt.amount)

			for i := 0; i < 2000; i++ {
				r, err := scorer.Score(context.Background(), tx, valueobject.ModeQuick)
				require.NoError(t, err)

				lo, hi := tt.tier.ConfidenceRange(r.IsFraudulent())
				assert.GreaterOrEqual(t, r.Confidence(), lo)
				assert.LessOrEqual(t, r.Confidence(), hi)
				assert.GreaterOrEqual(t, r.ProcessingTime(), 100.0)
				assert.LessOrEqual(t, r.ProcessingTime(), 250.0)
				assert.GreaterOrEqual(t, r.QuantumContribution(), 60.0)
				assert.LessOrEqual(t, r.QuantumContribution(), 85.0)
			}
		})
	}
}

func TestDetectionScorer_FraudRates(t *testing.T) {
	const n = 20000
	tolerances := map[string]float64{"LOW": 0.01, "MEDIUM": 0.015, "HIGH": 0.02}

	for _, mode := range []valueobject.ScoringMode{valueobject.ModeQuick, valueobject.ModeTwoStage} {
		for _, tt := range tierAmounts {
			t.Run(fmt.Sprintf("%s/%s", mode.Label(), tt.tier), func(t *testing.T) {
				analyzer := &mockAnalyzer{score: 0.5}
				scorer := service.NewDetectionScorer(service.NewSeededSource(2024), analyzer, slog.Default())
				tx := newTx(t, tt.amount)

				flagged := 0
				for i := 0; i < n; i++ {
					r, err := scorer.Score(context.Background(), tx, mode)
					require.NoError(t, err)
					if r.IsFraudulent() {
						flagged++
					}
				}

				rate := float64(flagged) / n
				assert.InDelta(t, tt.tier.FraudProbability(), rate, tolerances[tt.tier.String()])
			})
		}
	}
}

type snapshot struct {
	Fraud        bool
	Confidence   float64
	Processing   float64
	Contribution float64
	Deep         bool
}

func run(t *testing.T, seed uint64, mode valueobject.ScoringMode) []snapshot {
	t.Helper()
	scorer := service.NewDetectionScorer(service.NewSeededSource(seed), &mockAnalyzer{score: 0.3}, slog.Default())

	var out []snapshot
	for _, tt := range tierAmounts {
		tx := newTx(t, tt.amount)
		for i := 0; i < 50; i++ {
			r, err := scorer.Score(context.Background(), tx, mode)
			require.NoError(t, err)
			out = append(out, snapshot{
				Fraud:        r.IsFraudulent(),
				Confidence:   r.Confidence(),
				Processing:   r.ProcessingTime(),
				Contribution: r.QuantumContribution(),
				Deep:         r.DeepAnalysis(),
			})
		}
	}
	return out
}

func TestDetectionScorer_Deterministic(t *testing.T) {
	for _, mode := range []valueobject.ScoringMode{valueobject.ModeQuick, valueobject.ModeTwoStage} {
		t.Run(mode.Label(), func(t *testing.T) {
			first := run(t, 42, mode)
			second := run(t, 42, mode)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("same seed produced different results (-first +second):\n%s", diff)
			}

			other := run(t, 43, mode)
			assert.NotEmpty(t, cmp.Diff(first, other))
		})
	}
}

func TestDetectionScorer_TwoStageDrawOrder(t *testing.T) {
	// features x6, verdict, classical confidence, pipeline latency,
	// quantum contribution
	rnd := &sequenceSource{values: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.9, 0.2, 0.4, 0.4}}
	analyzer := &mockAnalyzer{score: 0.5}
	scorer := service.NewDetectionScorer(rnd, analyzer, slog.Default())

	r, err := scorer.Score(context.Background(), newTx(t, "7500"), valueobject.ModeTwoStage)
	require.NoError(t, err)

	require.Equal(t, 1, analyzer.calls)
	f := analyzer.features[0]
	assert.Equal(t, 7500.0, f.Amount)
	assert.Equal(t, 0.7, f.AmountRisk)
	assert.Equal(t, 0.1, f.CustomerHistory)
	assert.Equal(t, 0.2, f.MerchantReputation)
	assert.Equal(t, 0.3, f.LocationRisk)
	assert.Equal(t, 0.4, f.TimeOfDay)
	assert.Equal(t, 0.5, f.DeviceRisk)
	assert.Equal(t, 0.6, f.IPRisk)

	assert.False(t, r.IsFraudulent())
	assert.InDelta(t, 84.0, r.Confidence(), 1e-9)
	assert.InDelta(t, 160.0, r.ProcessingTime(), 1e-9)
	assert.InDelta(t, 70.0, r.QuantumContribution(), 1e-9)
	assert.True(t, r.DeepAnalysis())
	assert.True(t, valueobject.ModeTwoStage.Equal(r.Mode()))
	assert.Equal(t, len(rnd.values), rnd.next)
}

func TestDetectionScorer_TwoStageSkipsConfidentClassical(t *testing.T) {
	for _, amount := range []string{"250.00", "1250.00"} {
		t.Run(amount, func(t *testing.T) {
			analyzer := &mockAnalyzer{score: 1}
			scorer := service.NewDetectionScorer(service.NewSeededSource(11), analyzer, slog.Default())
			tx := newTx(t, amount)

			minSeen, maxSeen := math.Inf(1), math.Inf(-1)
			for i := 0; i < 500; i++ {
				r, err := scorer.Score(context.Background(), tx, valueobject.ModeTwoStage)
				require.NoError(t, err)
				assert.False(t, r.DeepAnalysis())
				minSeen = math.Min(minSeen, r.ProcessingTime())
				maxSeen = math.Max(maxSeen, r.ProcessingTime())
			}
			assert.Zero(t, analyzer.calls)

			// without the deep stage latency still spans the full range
			assert.GreaterOrEqual(t, minSeen, 100.0)
			assert.Less(t, minSeen, 110.0)
			assert.LessOrEqual(t, maxSeen, 250.0)
			assert.Greater(t, maxSeen, 240.0)
		})
	}
}

func TestDetectionScorer_TwoStageRanges(t *testing.T) {
	analyzer := &mockAnalyzer{score: 1}
	scorer := service.NewDetectionScorer(service.NewSeededSource(5), analyzer, slog.Default())
	tx := newTx(t, "9000")

	deep := 0
	for i := 0; i < 2000; i++ {
		r, err := scorer.Score(context.Background(), tx, valueobject.ModeTwoStage)
		require.NoError(t, err)

		lo, hi := valueobject.TierHigh.ConfidenceRange(r.IsFraudulent())
		assert.GreaterOrEqual(t, r.Confidence(), lo)
		assert.LessOrEqual(t, r.Confidence(), hi)
		assert.GreaterOrEqual(t, r.ProcessingTime(), 100.0)
		assert.LessOrEqual(t, r.ProcessingTime(), 250.0)

		if r.DeepAnalysis() {
			deep++
			// a certainty of 1 lifts confidence to the top of the band
			assert.InDelta(t, hi, r.Confidence(), 1e-9)
		}
	}
	assert.Equal(t, analyzer.calls, deep)
	assert.Positive(t, deep)
}

func TestDetectionScorer_DeepAnalysisFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	analyzer := &mockAnalyzer{err: fmt.Errorf("annealer unavailable")}
	scorer := service.NewDetectionScorer(service.NewSeededSource(5), analyzer, logger)
	tx := newTx(t, "9000")

	for i := 0; i < 500; i++ {
		r, err := scorer.Score(context.Background(), tx, valueobject.ModeTwoStage)
		require.NoError(t, err)
		assert.False(t, r.DeepAnalysis())
		assert.GreaterOrEqual(t, r.ProcessingTime(), 100.0)
		assert.LessOrEqual(t, r.ProcessingTime(), 250.0)
	}

	assert.Positive(t, analyzer.calls)
	assert.Contains(t, buf.String(), "deep analysis failed")
	assert.Contains(t, buf.String(), "annealer unavailable")
}

func TestDetectionScorer_NaNCertaintyFallsBack(t *testing.T) {
	rnd := &sequenceSource{values: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.9, 0.2, 0.4, 0.4}}
	analyzer := &mockAnalyzer{score: math.NaN()}
	scorer := service.NewDetectionScorer(rnd, analyzer, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	r, err := scorer.Score(context.Background(), newTx(t, "7500"), valueobject.ModeTwoStage)
	require.NoError(t, err)
	assert.False(t, r.DeepAnalysis())
	assert.InDelta(t, 78.0, r.Confidence(), 1e-9)
}

func TestDetectionScorer_UnsupportedMode(t *testing.T) {
	scorer := service.NewDetectionScorer(service.NewSeededSource(1), nil, slog.Default())

	_, err := scorer.Score(context.Background(), newTx(t, "10"), valueobject.ScoringMode{})
	require.Error(t, err)

	var internal *model.InternalError
	assert.ErrorAs(t, err, &internal)
}

func TestDetectionScorer_NoSource(t *testing.T) {
	scorer := service.NewDetectionScorer(nil, nil, nil)

	_, err := scorer.Score(context.Background(), newTx(t, "10"), valueobject.ModeQuick)
	require.Error(t, err)
	assert.False(t, model.IsInvalidInput(err))
}

func TestLockedSource_ConcurrentUse(t *testing.T) {
	src := service.NewLockedSource(service.NewSeededSource(99))
	scorer := service.NewDetectionScorer(src, &mockAnalyzer{score: 0.5}, slog.Default())
	tx := newTx(t, "1250.00")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r, err := scorer.Score(context.Background(), tx, valueobject.ModeQuick)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, r.Confidence(), 85.0)
			}
		}()
	}
	wg.Wait()
}

func TestExtractFeatures(t *testing.T) {
	rnd := service.NewSeededSource(3)
	f := service.ExtractFeatures(newTx(t, "12000"), rnd)

	assert.Equal(t, 12000.0, f.Amount)
	assert.Equal(t, 0.9, f.AmountRisk)
	for _, name := range f.Names() {
		if name == model.FeatureAmount {
			continue
		}
		v, ok := f.Get(name)
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.Less(t, v, 1.0, name)
	}
}
