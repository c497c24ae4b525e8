package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// Summary holds the executive dashboard headline metrics computed over the
// whole unified table.
type Summary struct {
	TotalAUM            decimal.Decimal
	AverageNAV          decimal.Decimal
	AverageRiskScore    float64
	AverageQualityScore float64
	RecordCount         int
}

// NAVPoint is one date/NAV observation for a fund.
type NAVPoint struct {
	Date time.Time
	NAV  decimal.Decimal
}

// NAVSeries is the date-ordered NAV history of a single fund.
type NAVSeries struct {
	FundID string
	Points []NAVPoint
}

// FundRisk is the average risk score of a single fund.
type FundRisk struct {
	FundID      string
	AverageRisk float64
}

// FundAUM is the summed total net assets of a single fund and its share of
// the overall AUM.
type FundAUM struct {
	FundID      string
	TotalAssets decimal.Decimal
	Share       float64
}

// DailySummary is one row of the automated daily fund summary report.
type DailySummary struct {
	FundID         string
	AverageNAV     decimal.Decimal
	NAVVolatility  float64
	TotalAssets    decimal.Decimal
	AverageRisk    float64
	AverageQuality float64
}

// Service computes the gold-layer aggregates over a unified table. It only
// reads the table it was constructed with; the descriptive aggregation here
// (means, sums, group-bys) is everything the dashboard charts need.
type Service struct {
	records []domain.FundRecord
}

// NewService creates a reporting Service over the given unified table.
// The service never mutates the slice.
func NewService(records []domain.FundRecord) *Service {
	return &Service{records: records}
}

// Summary computes the headline metrics: total AUM (sum of total net
// assets), average NAV, average risk score and average data quality score.
func (s *Service) Summary() Summary {
	if len(s.records) == 0 {
		return Summary{TotalAUM: decimal.Zero, AverageNAV: decimal.Zero}
	}

	totalAUM := decimal.Zero
	totalNAV := decimal.Zero
	totalRisk := 0.0
	totalQuality := 0.0

	for i := range s.records {
		totalAUM = totalAUM.Add(s.records[i].TotalNetAssets)
		totalNAV = totalNAV.Add(s.records[i].NAVPerShare)
		totalRisk += s.records[i].RiskScore
		totalQuality += s.records[i].DataQualityScore
	}

	count := decimal.NewFromInt(int64(len(s.records)))

	return Summary{
		TotalAUM:            totalAUM,
		AverageNAV:          totalNAV.Div(count),
		AverageRiskScore:    totalRisk / float64(len(s.records)),
		AverageQualityScore: totalQuality / float64(len(s.records)),
		RecordCount:         len(s.records),
	}
}

// NAVByFund groups the table by fund and returns each fund's NAV history,
// funds sorted by ID. Points keep the table's date order, which for
// generated data is chronological.
func (s *Service) NAVByFund() []NAVSeries {
	byFund := make(map[string][]NAVPoint)
	for i := range s.records {
		byFund[s.records[i].FundID] = append(byFund[s.records[i].FundID], NAVPoint{
			Date: s.records[i].Date,
			NAV:  s.records[i].NAVPerShare,
		})
	}

	series := make([]NAVSeries, 0, len(byFund))
	for _, fundID := range sortedFundIDs(byFund) {
		series = append(series, NAVSeries{FundID: fundID, Points: byFund[fundID]})
	}
	return series
}

// RiskByFund returns the average risk score per fund, sorted by fund ID.
func (s *Service) RiskByFund() []FundRisk {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for i := range s.records {
		totals[s.records[i].FundID] += s.records[i].RiskScore
		counts[s.records[i].FundID]++
	}

	risks := make([]FundRisk, 0, len(totals))
	for _, fundID := range sortedFundIDs(totals) {
		risks = append(risks, FundRisk{
			FundID:      fundID,
			AverageRisk: totals[fundID] / float64(counts[fundID]),
		})
	}
	return risks
}

// AUMByFund returns the summed total net assets per fund and each fund's
// share of overall AUM, sorted by fund ID.
func (s *Service) AUMByFund() []FundAUM {
	totals := make(map[string]decimal.Decimal)
	for i := range s.records {
		fundID := s.records[i].FundID
		current, ok := totals[fundID]
		if !ok {
			current = decimal.Zero
		}
		totals[fundID] = current.Add(s.records[i].TotalNetAssets)
	}

	overall := decimal.Zero
	for _, total := range totals {
		overall = overall.Add(total)
	}

	allocations := make([]FundAUM, 0, len(totals))
	for _, fundID := range sortedFundIDs(totals) {
		share := 0.0
		if !overall.IsZero() {
			share = totals[fundID].Div(overall).InexactFloat64()
		}
		allocations = append(allocations, FundAUM{
			FundID:      fundID,
			TotalAssets: totals[fundID],
			Share:       share,
		})
	}
	return allocations
}

// DailySummaries computes the automated daily fund summary report: per fund,
// average NAV, NAV volatility (sample standard deviation), summed total
// assets, average risk score and average data quality.
func (s *Service) DailySummaries() []DailySummary {
	type bucket struct {
		navs         []float64
		navTotal     decimal.Decimal
		assets       decimal.Decimal
		riskTotal    float64
		qualityTotal float64
		count        int
	}

	buckets := make(map[string]*bucket)
	for i := range s.records {
		b, ok := buckets[s.records[i].FundID]
		if !ok {
			b = &bucket{navTotal: decimal.Zero, assets: decimal.Zero}
			buckets[s.records[i].FundID] = b
		}
		b.navs = append(b.navs, s.records[i].NAVPerShare.InexactFloat64())
		b.navTotal = b.navTotal.Add(s.records[i].NAVPerShare)
		b.assets = b.assets.Add(s.records[i].TotalNetAssets)
		b.riskTotal += s.records[i].RiskScore
		b.qualityTotal += s.records[i].DataQualityScore
		b.count++
	}

	summaries := make([]DailySummary, 0, len(buckets))
	for _, fundID := range sortedFundIDs(buckets) {
		b := buckets[fundID]
		summaries = append(summaries, DailySummary{
			FundID:         fundID,
			AverageNAV:     b.navTotal.Div(decimal.NewFromInt(int64(b.count))),
			NAVVolatility:  sampleStdDev(b.navs),
			TotalAssets:    b.assets,
			AverageRisk:    b.riskTotal / float64(b.count),
			AverageQuality: b.qualityTotal / float64(b.count),
		})
	}
	return summaries
}

// HighRiskRecords returns the unified rows whose risk score exceeds the
// given threshold, in table order.
func (s *Service) HighRiskRecords(threshold float64) []domain.FundRecord {
	high := make([]domain.FundRecord, 0)
	for i := range s.records {
		if s.records[i].RiskScore > threshold {
			high = append(high, s.records[i])
		}
	}
	return high
}

// sampleStdDev computes the sample standard deviation (n-1 denominator).
// Returns 0 for fewer than two observations.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		sumSquares += (v - mean) * (v - mean)
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}

// sortedFundIDs returns the map's keys sorted, for stable report ordering.
func sortedFundIDs[V any](byFund map[string]V) []string {
	ids := make([]string, 0, len(byFund))
	for id := range byFund {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
