package event

import (
	"github.com/google/uuid"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/events"
)

const (
	// EventTypeDetectionCompleted is emitted for every scored transaction.
	EventTypeDetectionCompleted = "fraud.detection.completed"

	// EventTypeFraudFlagged is emitted when a transaction is judged fraudulent.
	EventTypeFraudFlagged = "fraud.detection.flagged"

	// AggregateTypeDetection names the aggregate detection events belong to.
	AggregateTypeDetection = "Detection"
)

// DetectionCompleted is published once a detection result has been produced.
type DetectionCompleted struct {
	events.BaseEvent
	MerchantID          string  `json:"merchant_id"`
	CustomerID          string  `json:"customer_id"`
	Amount              string  `json:"amount"`
	Tier                string  `json:"tier"`
	Mode                string  `json:"mode"`
	Confidence          float64 `json:"confidence"`
	ProcessingTime      float64 `json:"processing_time_ms"`
	QuantumContribution float64 `json:"quantum_contribution"`
	IsFraudulent        bool    `json:"is_fraudulent"`
	DeepAnalysis        bool    `json:"deep_analysis"`
}

// NewDetectionCompleted builds the completion event for one detection.
func NewDetectionCompleted(detectionID uuid.UUID, tx model.Transaction, r *model.DetectionResult) DetectionCompleted {
	return DetectionCompleted{
		BaseEvent:           events.NewBaseEvent(EventTypeDetectionCompleted, detectionID, AggregateTypeDetection),
		MerchantID:          tx.MerchantID(),
		CustomerID:          tx.CustomerID(),
		Amount:              tx.Amount().String(),
		Tier:                r.Tier().String(),
		Mode:                r.Mode().Label(),
		Confidence:          r.Confidence(),
		ProcessingTime:      r.ProcessingTime(),
		QuantumContribution: r.QuantumContribution(),
		IsFraudulent:        r.IsFraudulent(),
		DeepAnalysis:        r.DeepAnalysis(),
	}
}

// FraudFlagged is published when a transaction is judged fraudulent, so that
// alerting consumers can act on it.
type FraudFlagged struct {
	events.BaseEvent
	MerchantID string  `json:"merchant_id"`
	CustomerID string  `json:"customer_id"`
	DeviceID   string  `json:"device_id"`
	IPAddress  string  `json:"ip_address"`
	Location   string  `json:"location"`
	Amount     string  `json:"amount"`
	Tier       string  `json:"tier"`
	Confidence float64 `json:"confidence"`
}

// NewFraudFlagged builds the alert event for a fraudulent verdict.
func NewFraudFlagged(detectionID uuid.UUID, tx model.Transaction, r *model.DetectionResult) FraudFlagged {
	return FraudFlagged{
		BaseEvent:  events.NewBaseEvent(EventTypeFraudFlagged, detectionID, AggregateTypeDetection),
		MerchantID: tx.MerchantID(),
		CustomerID: tx.CustomerID(),
		DeviceID:   tx.DeviceID(),
		IPAddress:  tx.IPAddress(),
		Location:   tx.Location(),
		Amount:     tx.Amount().String(),
		Tier:       r.Tier().String(),
		Confidence: r.Confidence(),
	}
}
