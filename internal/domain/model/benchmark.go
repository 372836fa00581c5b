package model

// BenchmarkMetric compares one detection quality metric between the
// traditional and the quantum-enhanced pipelines. Values are percentages.
type BenchmarkMetric struct {
	Key           string
	Name          string
	Traditional   float64
	Enhanced      float64
	LowerIsBetter bool
}

// Improvement returns the gain of the enhanced pipeline in percentage points.
// For metrics where lower is better the sign is flipped so a positive value is
// always an improvement.
func (m BenchmarkMetric) Improvement() float64 {
	if m.LowerIsBetter {
		return m.Traditional - m.Enhanced
	}
	return m.Enhanced - m.Traditional
}

// BenchmarkReport is the static comparison shown on the dashboard charts.
type BenchmarkReport struct {
	Title   string
	Metrics []BenchmarkMetric
}
