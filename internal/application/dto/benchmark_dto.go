package dto

import "github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"

// BenchmarkMetricResponse is one bar pair of the comparison chart.
type BenchmarkMetricResponse struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Traditional   float64 `json:"traditional"`
	Enhanced      float64 `json:"enhanced"`
	Improvement   float64 `json:"improvement"`
	LowerIsBetter bool    `json:"lowerIsBetter"`
}

// BenchmarkResponse is the output DTO for the comparison charts.
type BenchmarkResponse struct {
	Title   string                    `json:"title"`
	Metrics []BenchmarkMetricResponse `json:"metrics"`
}

// FromBenchmarkReport converts the fixture report into its response form.
func FromBenchmarkReport(r model.BenchmarkReport) BenchmarkResponse {
	metrics := make([]BenchmarkMetricResponse, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		metrics = append(metrics, BenchmarkMetricResponse{
			Key:           m.Key,
			Name:          m.Name,
			Traditional:   m.Traditional,
			Enhanced:      m.Enhanced,
			Improvement:   round2(m.Improvement()),
			LowerIsBetter: m.LowerIsBetter,
		})
	}
	return BenchmarkResponse{Title: r.Title, Metrics: metrics}
}
