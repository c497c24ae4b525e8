package tui

import (
	"fmt"
	"strings"
)

// sparkRunes are the eight block heights used for line-ish charts.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series as a single row of block characters, scaled to
// the series' own min/max. A flat series renders at mid height.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var sb strings.Builder
	for _, v := range values {
		idx := len(sparkRunes) / 2
		if max > min {
			idx = int((v - min) / (max - min) * float64(len(sparkRunes)-1))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

// BarChart renders labeled horizontal bars scaled so the largest value fills
// the given width. Values must be non-negative.
func BarChart(styles Styles, labels []string, values []float64, width int) string {
	if len(labels) == 0 || len(labels) != len(values) || width <= 0 {
		return ""
	}

	max := 0.0
	labelWidth := 0
	for i, label := range labels {
		if values[i] > max {
			max = values[i]
		}
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	if max == 0 {
		max = 1
	}

	var sb strings.Builder
	for i, label := range labels {
		barLen := int(values[i] / max * float64(width))
		if barLen == 0 && values[i] > 0 {
			barLen = 1
		}
		sb.WriteString(pad(label, labelWidth))
		sb.WriteString(" ")
		sb.WriteString(styles.Subtitle.Render(strings.Repeat("█", barLen)))
		sb.WriteString(fmt.Sprintf(" %.1f", values[i]))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Downsample reduces a series to at most n points by picking evenly spaced
// samples, so long histories fit a terminal row.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}

	sampled := make([]float64, 0, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		sampled = append(sampled, values[int(float64(i)*step)])
	}
	return sampled
}
