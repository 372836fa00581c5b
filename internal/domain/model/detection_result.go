package model

import (
	"errors"
	"math"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// DetectionResultParams groups the values a scorer produced for one call.
type DetectionResultParams struct {
	Tier                valueobject.Tier
	Mode                valueobject.ScoringMode
	Confidence          float64
	ProcessingTime      float64
	QuantumContribution float64
	IsFraudulent        bool
	DeepAnalysis        bool
}

// DetectionResult is the immutable verdict for a single transaction.
type DetectionResult struct {
	tier                valueobject.Tier
	mode                valueobject.ScoringMode
	confidence          float64
	processingTime      float64
	quantumContribution float64
	isFraudulent        bool
	deepAnalysis        bool
}

// NewDetectionResult builds a DetectionResult. Confidence and quantum
// contribution are clamped into [0,100]; a non-positive or non-finite
// processing time is an internal error.
func NewDetectionResult(p DetectionResultParams) (*DetectionResult, error) {
	if math.IsNaN(p.ProcessingTime) || math.IsInf(p.ProcessingTime, 0) || p.ProcessingTime <= 0 {
		return nil, &InternalError{Op: "build detection result", Err: errors.New("processing time must be positive")}
	}
	if math.IsNaN(p.Confidence) || math.IsNaN(p.QuantumContribution) {
		return nil, &InternalError{Op: "build detection result", Err: errors.New("score is not a number")}
	}

	return &DetectionResult{
		tier:                p.Tier,
		mode:                p.Mode,
		confidence:          clampPercent(p.Confidence),
		processingTime:      p.ProcessingTime,
		quantumContribution: clampPercent(p.QuantumContribution),
		isFraudulent:        p.IsFraudulent,
		deepAnalysis:        p.DeepAnalysis,
	}, nil
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// Accessors

func (r *DetectionResult) IsFraudulent() bool            { return r.isFraudulent }
func (r *DetectionResult) Confidence() float64           { return r.confidence }
func (r *DetectionResult) ProcessingTime() float64       { return r.processingTime }
func (r *DetectionResult) QuantumContribution() float64  { return r.quantumContribution }
func (r *DetectionResult) Tier() valueobject.Tier        { return r.tier }
func (r *DetectionResult) Mode() valueobject.ScoringMode { return r.mode }
func (r *DetectionResult) DeepAnalysis() bool            { return r.deepAnalysis }
