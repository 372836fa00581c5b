package service

import (
	"context"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// Scorer defines the interface for detection strategies.
// DetectionScorer implements it for both quick and two-stage modes.
type Scorer interface {
	Score(ctx context.Context, tx model.Transaction, mode valueobject.ScoringMode) (*model.DetectionResult, error)
}
