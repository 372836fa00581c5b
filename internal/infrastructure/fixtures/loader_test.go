package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/fixtures"
)

func TestNewLoader_Embedded(t *testing.T) {
	l, err := fixtures.NewLoader("")
	require.NoError(t, err)

	report, err := l.Benchmarks(context.Background())
	require.NoError(t, err)

	keys := make([]string, 0, len(report.Metrics))
	for _, m := range report.Metrics {
		keys = append(keys, m.Key)
		assert.Positive(t, m.Improvement(), m.Key)
	}
	assert.Equal(t, []string{"accuracy", "precision", "recall", "f1_score", "false_positive_rate"}, keys)
	assert.True(t, report.Metrics[4].LowerIsBetter)
}

func TestLoader_ReturnsCopy(t *testing.T) {
	l, err := fixtures.NewLoader("")
	require.NoError(t, err)

	first, _ := l.Benchmarks(context.Background())
	first.Metrics[0].Enhanced = 0

	second, _ := l.Benchmarks(context.Background())
	assert.NotZero(t, second.Metrics[0].Enhanced)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewLoader_Override(t *testing.T) {
	path := writeFile(t, `
title: Custom
metrics:
  - key: recall
    traditional: 80
    enhanced: 90
`)

	l, err := fixtures.NewLoader(path)
	require.NoError(t, err)

	report, err := l.Benchmarks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Custom", report.Title)
	require.Len(t, report.Metrics, 1)
	assert.Equal(t, "recall", report.Metrics[0].Name)
}

func TestNewLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"no metrics", "title: empty\n", "no metrics"},
		{"missing key", "metrics:\n  - name: Recall\n    traditional: 1\n    enhanced: 2\n", "key is required"},
		{"duplicate", "metrics:\n  - key: a\n  - key: a\n", "duplicate"},
		{"out of range", "metrics:\n  - key: a\n    traditional: 120\n", "within [0,100]"},
		{"unknown field", "metrics:\n  - key: a\n    speedup: 3\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixtures.NewLoader(writeFile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLoader_MissingFile(t *testing.T) {
	_, err := fixtures.NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
