package reporting

import (
	"time"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// QualityTrendPoint is one day of the synthetic data-quality trend shown on
// the monitoring page. The values are illustrative: each metric drifts
// upward over the window with a little noise.
type QualityTrendPoint struct {
	Date         time.Time
	Overall      float64
	Completeness float64
	Accuracy     float64
	Timeliness   float64
}

// QualityTrend generates the monitoring page's quality trend series: one
// point per day starting at start, each metric following a linear drift plus
// Gaussian noise drawn from the sampler.
func QualityTrend(sampler domain.Sampler, start time.Time, days int) []QualityTrendPoint {
	points := make([]QualityTrendPoint, 0, days)
	for day := 0; day < days; day++ {
		i := float64(day)
		points = append(points, QualityTrendPoint{
			Date:         start.AddDate(0, 0, day),
			Overall:      85 + i + sampler.Normal(0, 2),
			Completeness: 88 + i*0.5 + sampler.Normal(0, 1),
			Accuracy:     90 + i*0.3 + sampler.Normal(0, 1.5),
			Timeliness:   85 + i*0.8 + sampler.Normal(0, 1),
		})
	}
	return points
}
