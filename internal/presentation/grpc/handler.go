package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// Compile-time assertion that FraudDetectionHandler implements FraudDetectionServiceServer.
var _ FraudDetectionServiceServer = (*FraudDetectionHandler)(nil)

// FraudDetectionHandler implements the gRPC FraudDetectionServiceServer interface.
type FraudDetectionHandler struct {
	UnimplementedFraudDetectionServiceServer
	detect     *usecase.DetectFraud
	benchmarks *usecase.GetBenchmarks
	logger     *slog.Logger
}

// NewFraudDetectionHandler creates a new gRPC handler.
func NewFraudDetectionHandler(
	detect *usecase.DetectFraud,
	benchmarks *usecase.GetBenchmarks,
	logger *slog.Logger,
) *FraudDetectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FraudDetectionHandler{
		detect:     detect,
		benchmarks: benchmarks,
		logger:     logger,
	}
}

// Proto-aligned request/response message types.

// TransactionMsg represents the proto Transaction message.
type TransactionMsg struct {
	Amount     string `json:"amount"`
	MerchantID string `json:"merchant_id"`
	CustomerID string `json:"customer_id"`
	Location   string `json:"location"`
	DeviceID   string `json:"device_id"`
	IPAddress  string `json:"ip_address"`
	Timestamp  string `json:"timestamp"`
}

// DetectRequest represents the proto DetectRequest message. Mode is "quick"
// or "two-stage"; empty selects the server default.
type DetectRequest struct {
	Transaction *TransactionMsg `json:"transaction"`
	Mode        string          `json:"mode"`
}

// DetectionResultMsg represents the proto DetectionResult message.
type DetectionResultMsg struct {
	IsFraudulent        bool    `json:"is_fraudulent"`
	Confidence          float64 `json:"confidence"`
	ProcessingTimeMs    float64 `json:"processing_time_ms"`
	QuantumContribution float64 `json:"quantum_contribution"`
}

// DetectResponse represents the proto DetectResponse message.
type DetectResponse struct {
	Result *DetectionResultMsg `json:"result"`
}

// GetBenchmarksRequest represents the proto GetBenchmarksRequest message.
type GetBenchmarksRequest struct{}

// BenchmarkMetricMsg represents the proto BenchmarkMetric message.
type BenchmarkMetricMsg struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Traditional   float64 `json:"traditional"`
	Enhanced      float64 `json:"enhanced"`
	Improvement   float64 `json:"improvement"`
	LowerIsBetter bool    `json:"lower_is_better"`
}

// GetBenchmarksResponse represents the proto GetBenchmarksResponse message.
type GetBenchmarksResponse struct {
	Title   string                `json:"title"`
	Metrics []*BenchmarkMetricMsg `json:"metrics"`
}

// Detect handles a detection request.
func (h *FraudDetectionHandler) Detect(ctx context.Context, req *DetectRequest) (*DetectResponse, error) {
	if req == nil || req.Transaction == nil {
		return nil, status.Error(codes.InvalidArgument, "transaction is required")
	}

	var mode valueobject.ScoringMode
	if req.Mode != "" {
		m, err := valueobject.ScoringModeFromString(req.Mode)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		mode = m
	}

	tx := req.Transaction
	resp, err := h.detect.Execute(ctx, dto.DetectRequest{
		Amount:     dto.Amount(tx.Amount),
		MerchantID: tx.MerchantID,
		CustomerID: tx.CustomerID,
		Location:   tx.Location,
		DeviceID:   tx.DeviceID,
		IPAddress:  tx.IPAddress,
		Timestamp:  tx.Timestamp,
	}, mode)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	return &DetectResponse{Result: &DetectionResultMsg{
		IsFraudulent:        resp.IsFraudulent,
		Confidence:          resp.Confidence,
		ProcessingTimeMs:    resp.ProcessingTime,
		QuantumContribution: resp.QuantumContribution,
	}}, nil
}

// GetBenchmarks returns the static comparison fixture.
func (h *FraudDetectionHandler) GetBenchmarks(ctx context.Context, _ *GetBenchmarksRequest) (*GetBenchmarksResponse, error) {
	resp, err := h.benchmarks.Execute(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	out := &GetBenchmarksResponse{Title: resp.Title}
	for _, m := range resp.Metrics {
		out.Metrics = append(out.Metrics, &BenchmarkMetricMsg{
			Key:           m.Key,
			Name:          m.Name,
			Traditional:   m.Traditional,
			Enhanced:      m.Enhanced,
			Improvement:   m.Improvement,
			LowerIsBetter: m.LowerIsBetter,
		})
	}
	return out, nil
}

func (h *FraudDetectionHandler) toStatus(ctx context.Context, err error) error {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		return status.Error(codes.InvalidArgument, invalid.Error())
	}
	h.logger.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
	return status.Error(codes.Internal, "internal error")
}
