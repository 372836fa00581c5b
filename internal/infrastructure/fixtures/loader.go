package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
)

//go:embed benchmarks.yaml
var defaultBenchmarks []byte

type benchmarkFile struct {
	Title   string            `yaml:"title"`
	Metrics []benchmarkMetric `yaml:"metrics"`
}

type benchmarkMetric struct {
	Key           string  `yaml:"key"`
	Name          string  `yaml:"name"`
	Traditional   float64 `yaml:"traditional"`
	Enhanced      float64 `yaml:"enhanced"`
	LowerIsBetter bool    `yaml:"lower_is_better"`
}

// Loader implements port.BenchmarkSource over a YAML fixture parsed once at
// construction.
type Loader struct {
	report model.BenchmarkReport
}

// NewLoader parses the fixture at path, or the embedded default when path is
// empty.
func NewLoader(path string) (*Loader, error) {
	data := defaultBenchmarks
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read benchmarks file: %w", err)
		}
	}

	report, err := parse(data)
	if err != nil {
		return nil, err
	}
	return &Loader{report: report}, nil
}

// Benchmarks returns a copy of the parsed report.
func (l *Loader) Benchmarks(_ context.Context) (model.BenchmarkReport, error) {
	out := l.report
	out.Metrics = append([]model.BenchmarkMetric(nil), l.report.Metrics...)
	return out, nil
}

func parse(data []byte) (model.BenchmarkReport, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f benchmarkFile
	if err := dec.Decode(&f); err != nil {
		return model.BenchmarkReport{}, fmt.Errorf("failed to parse benchmarks: %w", err)
	}
	if len(f.Metrics) == 0 {
		return model.BenchmarkReport{}, errors.New("benchmarks: no metrics defined")
	}

	seen := make(map[string]bool, len(f.Metrics))
	report := model.BenchmarkReport{Title: f.Title}
	for _, m := range f.Metrics {
		if m.Key == "" {
			return model.BenchmarkReport{}, errors.New("benchmarks: metric key is required")
		}
		if seen[m.Key] {
			return model.BenchmarkReport{}, fmt.Errorf("benchmarks: duplicate metric %q", m.Key)
		}
		seen[m.Key] = true
		if !percent(m.Traditional) || !percent(m.Enhanced) {
			return model.BenchmarkReport{}, fmt.Errorf("benchmarks: metric %q values must be within [0,100]", m.Key)
		}
		name := m.Name
		if name == "" {
			name = m.Key
		}
		report.Metrics = append(report.Metrics, model.BenchmarkMetric{
			Key:           m.Key,
			Name:          name,
			Traditional:   m.Traditional,
			Enhanced:      m.Enhanced,
			LowerIsBetter: m.LowerIsBetter,
		})
	}
	return report, nil
}

func percent(v float64) bool {
	return v >= 0 && v <= 100
}
