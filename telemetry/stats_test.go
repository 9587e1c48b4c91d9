package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"clamped low", []float64{1, 2, 3}, -1, 1.0},
		{"clamped high", []float64{1, 2, 3}, 2, 3.0},
		{"p50 even", []float64{10, 20, 30, 40}, 0.5, 20},
		{"p90 interpolates", []float64{10, 20, 30, 40}, 0.9, 36},
		{"p10", []float64{10, 20, 30, 40}, 0.1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.sorted, tt.p), 1e-9)
		})
	}
}

func TestComputeEnergyStats(t *testing.T) {
	mean, p10, p50, p90 := ComputeEnergyStats([]float64{40, 10, 30, 20})

	assert.InDelta(t, 25.0, mean, 1e-9)
	assert.InDelta(t, 10.0, p10, 1e-9)
	assert.InDelta(t, 20.0, p50, 1e-9)
	assert.InDelta(t, 36.0, p90, 1e-9)
}

func TestComputeEnergyStats_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeEnergyStats(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestComputeEnergyStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeEnergyStats(nil)
	assert.Zero(t, mean)
	assert.Zero(t, p10)
	assert.Zero(t, p50)
	assert.Zero(t, p90)
}
