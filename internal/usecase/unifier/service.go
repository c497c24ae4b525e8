package unifier

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// Fallback fractions applied when a fund has no custody row for a date:
// market value defaults to 95% of total net assets and cash balance to the
// remaining 5%.
var (
	marketValueFallbackRatio = decimal.RequireFromString("0.95")
	cashBalanceFallbackRatio = decimal.RequireFromString("0.05")
)

// Distribution parameters for the analytics resample fallback. These must
// stay identical to the generator's analytics distributions: a missing
// analytics row is re-drawn, not defaulted.
const (
	benchmarkReturnMean   = 0.0008
	benchmarkReturnStdDev = 0.02
	riskScoreMin          = 1
	riskScoreMax          = 10
)

// recordKey identifies a row by its (date, account) pair. Dates are compared
// by instant (UnixNano) so wall-clock metadata on time.Time never splits a
// key.
type recordKey struct {
	date    int64
	account string
}

func keyOf(date time.Time, account string) recordKey {
	return recordKey{date: date.UnixNano(), account: account}
}

// Service builds the unified table from the three source tables. The sampler
// feeds the analytics resample fallback and the decorative data-quality
// score; it is the only source of non-determinism.
type Service struct {
	sampler domain.Sampler
}

// NewService creates a new unifier Service instance.
func NewService(sampler domain.Sampler) *Service {
	return &Service{sampler: sampler}
}

// Unify produces one unified row per valuation (date, account) pair.
// Logic:
//  1. Validate every input row (fail with ValidationError, never skip —
//     the row-count guarantee depends on total correspondence)
//  2. Index the three tables by (date, account); on duplicate keys the
//     first row wins
//  3. Iterate the distinct dates of the valuation table, then its distinct
//     accounts, and emit a row for every pair that has a valuation record
//  4. Copy valuation fields verbatim; fall back per field family when the
//     custody or analytics feed lacks the key
//
// Guarantee: the output has exactly as many rows as the valuation table
// (left join driven by valuation keys, no fan-out, no row loss).
func (s *Service) Unify(
	valuations []domain.ValuationRecord,
	custody []domain.CustodyRecord,
	analytics []domain.AnalyticsRecord,
) ([]domain.FundRecord, error) {
	valuationIndex, err := indexValuations(valuations)
	if err != nil {
		return nil, err
	}
	custodyIndex, err := indexCustody(custody)
	if err != nil {
		return nil, err
	}
	analyticsIndex, err := indexAnalytics(analytics)
	if err != nil {
		return nil, err
	}

	dates := distinctDates(valuations)
	accounts := distinctAccounts(valuations)

	unified := make([]domain.FundRecord, 0, len(valuations))

	for _, date := range dates {
		for _, account := range accounts {
			valuation, ok := valuationIndex[keyOf(date, account)]
			if !ok {
				// The valuation feed carries no row for this pair, so the
				// unified table carries none either.
				continue
			}

			row := domain.FundRecord{
				Date:              valuation.Date,
				FundID:            valuation.AccountID,
				NAVPerShare:       valuation.NAVPerShare,
				TotalNetAssets:    valuation.TotalAssets,
				SharesOutstanding: valuation.SharesOutstanding,
				DataQualityScore:  s.sampler.Uniform(85, 99),
			}

			if custodyRow, ok := custodyIndex[keyOf(date, account)]; ok {
				row.MarketValue = custodyRow.MarketValue
				row.CashBalance = custodyRow.CashBalance
			} else {
				row.MarketValue = valuation.TotalAssets.Mul(marketValueFallbackRatio)
				row.CashBalance = valuation.TotalAssets.Mul(cashBalanceFallbackRatio)
			}

			if analyticsRow, ok := analyticsIndex[keyOf(date, account)]; ok {
				row.BenchmarkReturn = analyticsRow.BenchmarkReturn
				row.RiskScore = analyticsRow.RiskScore
			} else {
				// Missing analytics values are re-drawn from the feed's own
				// distributions rather than defaulted. Asymmetric with the
				// custody fallback above, and kept that way on purpose.
				row.BenchmarkReturn = s.sampler.Normal(benchmarkReturnMean, benchmarkReturnStdDev)
				row.RiskScore = s.sampler.Uniform(riskScoreMin, riskScoreMax)
			}

			unified = append(unified, row)
		}
	}

	return unified, nil
}

// indexValuations validates and indexes the valuation table by key.
// The first row wins on duplicate keys.
func indexValuations(records []domain.ValuationRecord) (map[recordKey]domain.ValuationRecord, error) {
	index := make(map[recordKey]domain.ValuationRecord, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		key := keyOf(records[i].Date, records[i].AccountID)
		if _, exists := index[key]; !exists {
			index[key] = records[i]
		}
	}
	return index, nil
}

// indexCustody validates and indexes the custody table by key.
func indexCustody(records []domain.CustodyRecord) (map[recordKey]domain.CustodyRecord, error) {
	index := make(map[recordKey]domain.CustodyRecord, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		key := keyOf(records[i].Date, records[i].AccountID)
		if _, exists := index[key]; !exists {
			index[key] = records[i]
		}
	}
	return index, nil
}

// indexAnalytics validates and indexes the analytics table by key.
func indexAnalytics(records []domain.AnalyticsRecord) (map[recordKey]domain.AnalyticsRecord, error) {
	index := make(map[recordKey]domain.AnalyticsRecord, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		key := keyOf(records[i].Date, records[i].AccountID)
		if _, exists := index[key]; !exists {
			index[key] = records[i]
		}
	}
	return index, nil
}

// distinctDates returns the distinct valuation dates in order of first
// appearance.
func distinctDates(records []domain.ValuationRecord) []time.Time {
	seen := make(map[int64]bool, len(records))
	dates := make([]time.Time, 0)
	for i := range records {
		instant := records[i].Date.UnixNano()
		if !seen[instant] {
			seen[instant] = true
			dates = append(dates, records[i].Date)
		}
	}
	return dates
}

// distinctAccounts returns the distinct valuation accounts in order of first
// appearance.
func distinctAccounts(records []domain.ValuationRecord) []string {
	seen := make(map[string]bool, len(records))
	accounts := make([]string, 0)
	for i := range records {
		if !seen[records[i].AccountID] {
			seen[records[i].AccountID] = true
			accounts = append(accounts, records[i].AccountID)
		}
	}
	return accounts
}
