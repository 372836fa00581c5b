package model_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

func TestNewDetectionResult_Clamps(t *testing.T) {
	tests := []struct {
		name         string
		confidence   float64
		contribution float64
		wantConf     float64
		wantContrib  float64
	}{
		{"in range", 92.5, 70, 92.5, 70},
		{"above range", 100.0000001, 140, 100, 100},
		{"below range", -3, -0.5, 0, 0},
		{"bounds", 0, 100, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := model.NewDetectionResult(model.DetectionResultParams{
				Tier:                valueobject.TierHigh,
				Mode:                valueobject.ModeQuick,
				Confidence:          tt.confidence,
				ProcessingTime:      150,
				QuantumContribution: tt.contribution,
				IsFraudulent:        true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantConf, r.Confidence())
			assert.Equal(t, tt.wantContrib, r.QuantumContribution())
			assert.True(t, r.IsFraudulent())
			assert.Equal(t, 150.0, r.ProcessingTime())
			assert.True(t, valueobject.TierHigh.Equal(r.Tier()))
			assert.True(t, valueobject.ModeQuick.Equal(r.Mode()))
			assert.False(t, r.DeepAnalysis())
		})
	}
}

func TestNewDetectionResult_RejectsBadProcessingTime(t *testing.T) {
	for _, pt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprint(pt), func(t *testing.T) {
			_, err := model.NewDetectionResult(model.DetectionResultParams{
				Confidence:          90,
				ProcessingTime:      pt,
				QuantumContribution: 70,
			})
			require.Error(t, err)

			var internal *model.InternalError
			require.ErrorAs(t, err, &internal)
			assert.False(t, model.IsInvalidInput(err))
		})
	}
}

func TestNewDetectionResult_RejectsNaNScores(t *testing.T) {
	_, err := model.NewDetectionResult(model.DetectionResultParams{
		Confidence:          math.NaN(),
		ProcessingTime:      120,
		QuantumContribution: 70,
	})
	require.Error(t, err)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("scoring: %w", &model.InternalError{Op: "analyze", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "scoring: analyze: boom", err.Error())
	assert.Equal(t, "analyze: internal error", (&model.InternalError{Op: "analyze"}).Error())
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &model.InvalidInputError{Field: "amount", Reason: "amount is required"}
	assert.Equal(t, "invalid amount: amount is required", err.Error())
	assert.Equal(t, "invalid input: empty body", (&model.InvalidInputError{Reason: "empty body"}).Error())
}
