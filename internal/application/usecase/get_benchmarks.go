package usecase

import (
	"context"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/port"
)

// GetBenchmarks returns the static traditional vs enhanced comparison.
type GetBenchmarks struct {
	source port.BenchmarkSource
}

// NewGetBenchmarks creates a new GetBenchmarks use case.
func NewGetBenchmarks(source port.BenchmarkSource) *GetBenchmarks {
	return &GetBenchmarks{source: source}
}

// Execute loads the comparison fixture.
func (uc *GetBenchmarks) Execute(ctx context.Context) (dto.BenchmarkResponse, error) {
	report, err := uc.source.Benchmarks(ctx)
	if err != nil {
		return dto.BenchmarkResponse{}, &model.InternalError{Op: "load benchmarks", Err: err}
	}
	return dto.FromBenchmarkReport(report), nil
}
