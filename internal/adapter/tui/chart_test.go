package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline_MapsMinAndMaxToExtremes(t *testing.T) {
	out := []rune(Sparkline([]float64{0, 50, 100}))

	assert.Len(t, out, 3)
	assert.Equal(t, '▁', out[0])
	assert.Equal(t, '█', out[2])
}

func TestSparkline_FlatSeriesRendersMidHeight(t *testing.T) {
	out := []rune(Sparkline([]float64{5, 5, 5}))

	assert.Len(t, out, 3)
	assert.Equal(t, out[0], out[1])
	assert.Equal(t, out[1], out[2])
}

func TestSparkline_EmptySeries(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
}

func TestBarChart_ScalesToLargestValue(t *testing.T) {
	out := BarChart(DefaultStyles(), []string{"F1", "F2"}, []float64{10, 5}, 20)

	assert.Contains(t, out, "F1")
	assert.Contains(t, out, "F2")
	assert.Contains(t, out, "10.0")
	assert.Contains(t, out, "5.0")
}

func TestBarChart_MismatchedInputsRenderNothing(t *testing.T) {
	assert.Equal(t, "", BarChart(DefaultStyles(), []string{"F1"}, []float64{1, 2}, 20))
	assert.Equal(t, "", BarChart(DefaultStyles(), nil, nil, 20))
}

func TestDownsample_KeepsEndpoints(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	sampled := Downsample(values, 10)

	assert.Len(t, sampled, 10)
	assert.Equal(t, 0.0, sampled[0])
	assert.Equal(t, 99.0, sampled[9])
}

func TestDownsample_ShortSeriesUnchanged(t *testing.T) {
	values := []float64{1, 2, 3}
	assert.Equal(t, values, Downsample(values, 10))
}
