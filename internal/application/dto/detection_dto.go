package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
)

// Amount accepts a transaction amount sent either as a JSON string
// ("1250.00") or as a bare JSON number (1250.00). The literal text is kept so
// no precision is lost before decimal parsing.
type Amount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a string or number: %w", err)
		}
		*a = Amount(n.String())
		return nil
	}
}

// DetectRequest is the input DTO for scoring a transaction.
type DetectRequest struct {
	Amount     Amount `json:"amount"`
	MerchantID string `json:"merchantId"`
	CustomerID string `json:"customerId"`
	Location   string `json:"location"`
	DeviceID   string `json:"deviceId"`
	IPAddress  string `json:"ipAddress"`
	Timestamp  string `json:"timestamp"`
}

// ToInput converts the request into the domain constructor input.
func (r DetectRequest) ToInput() model.TransactionInput {
	return model.TransactionInput{
		Amount:     string(r.Amount),
		MerchantID: r.MerchantID,
		CustomerID: r.CustomerID,
		Location:   r.Location,
		DeviceID:   r.DeviceID,
		IPAddress:  r.IPAddress,
		Timestamp:  r.Timestamp,
	}
}

// DetectionResponse is the output DTO for a detection.
type DetectionResponse struct {
	IsFraudulent        bool    `json:"isFraudulent"`
	Confidence          float64 `json:"confidence"`
	ProcessingTime      float64 `json:"processingTime"`
	QuantumContribution float64 `json:"quantumContribution"`
}

// FromModel converts a domain DetectionResult to a DetectionResponse.
// Numeric values are rounded to two decimals.
func FromModel(r *model.DetectionResult) DetectionResponse {
	return DetectionResponse{
		IsFraudulent:        r.IsFraudulent(),
		Confidence:          round2(r.Confidence()),
		ProcessingTime:      round2(r.ProcessingTime()),
		QuantumContribution: round2(r.QuantumContribution()),
	}
}

// ErrorResponse is the body returned for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
