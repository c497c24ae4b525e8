package generator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// Config holds the generation parameters: the date window and the account
// universe each feed is generated over. The demo uses the fixed literals
// from DefaultConfig; the universes are literal lists, not computed.
type Config struct {
	StartDate time.Time
	Days      int

	// ValuationAccounts is the full account universe. The custody and
	// analytics universes are proper subsets of it, which is what forces
	// the unifier's fallback logic.
	ValuationAccounts []string
	CustodyAccounts   []string
	AnalyticsAccounts []string
}

// DefaultConfig returns the fixed demo parameters: a 90-day window starting
// 2024-01-01 over a five-fund universe, with three funds on the custody feed
// and four on the analytics feed.
func DefaultConfig() Config {
	return Config{
		StartDate:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Days:              90,
		ValuationAccounts: []string{"FUND001", "FUND002", "FUND003", "FUND004", "FUND005"},
		CustodyAccounts:   []string{"FUND001", "FUND002", "FUND003"},
		AnalyticsAccounts: []string{"FUND001", "FUND002", "FUND004", "FUND005"},
	}
}

// Validate ensures the config describes a usable generation window.
// Returns a ConfigError if validation fails.
func (c Config) Validate() error {
	if c.StartDate.IsZero() {
		return domain.NewConfigError("start date must be set")
	}
	if c.Days <= 0 {
		return domain.NewConfigError("date window must cover at least one day")
	}
	if len(c.ValuationAccounts) == 0 {
		return domain.NewConfigError("valuation account universe cannot be empty")
	}
	return nil
}

// Service generates the three synthetic source tables. All randomness comes
// from the injected sampler, so a fixed seed reproduces the tables exactly.
type Service struct {
	sampler domain.Sampler
	config  Config
}

// NewService creates a new generator Service instance.
func NewService(sampler domain.Sampler, config Config) *Service {
	return &Service{
		sampler: sampler,
		config:  config,
	}
}

// GenerateSources produces the three source tables for the configured window.
// Logic:
//  1. Validate the config (fail fast with ConfigError, before any sampling)
//  2. For each day in the window, for each account in a feed's universe,
//     draw one record per the feed's distributions
//  3. NAV additionally carries a linear drift of 0.01 per day index, so the
//     price series trends mildly upward
//
// Generation always succeeds for a valid config; there is no partial output.
func (s *Service) GenerateSources() ([]domain.ValuationRecord, []domain.CustodyRecord, []domain.AnalyticsRecord, error) {
	if err := s.config.Validate(); err != nil {
		return nil, nil, nil, err
	}

	valuations := make([]domain.ValuationRecord, 0, s.config.Days*len(s.config.ValuationAccounts))
	custody := make([]domain.CustodyRecord, 0, s.config.Days*len(s.config.CustodyAccounts))
	analytics := make([]domain.AnalyticsRecord, 0, s.config.Days*len(s.config.AnalyticsAccounts))

	for day := 0; day < s.config.Days; day++ {
		date := s.config.StartDate.AddDate(0, 0, day)

		for _, account := range s.config.ValuationAccounts {
			valuations = append(valuations, s.valuationRecord(date, day, account))
		}
		for _, account := range s.config.CustodyAccounts {
			custody = append(custody, s.custodyRecord(date, account))
		}
		for _, account := range s.config.AnalyticsAccounts {
			analytics = append(analytics, s.analyticsRecord(date, account))
		}
	}

	return valuations, custody, analytics, nil
}

// valuationRecord draws one fund-accounting row.
// NAV = 100 + N(0, 2) + dayIndex * 0.01 (Gaussian noise around 100 plus the
// linear drift term).
func (s *Service) valuationRecord(date time.Time, dayIndex int, account string) domain.ValuationRecord {
	nav := 100 + s.sampler.Normal(0, 2) + float64(dayIndex)*0.01

	return domain.ValuationRecord{
		Date:              date,
		AccountID:         account,
		NAVPerShare:       decimal.NewFromFloat(nav),
		TotalAssets:       decimal.NewFromFloat(s.sampler.Uniform(50_000_000, 200_000_000)),
		SharesOutstanding: decimal.NewFromFloat(s.sampler.Uniform(500_000, 2_000_000)),
		Source:            domain.SourceValuation,
	}
}

// custodyRecord draws one custody and settlement row.
func (s *Service) custodyRecord(date time.Time, account string) domain.CustodyRecord {
	return domain.CustodyRecord{
		Date:          date,
		AccountID:     account,
		MarketValue:   decimal.NewFromFloat(s.sampler.Uniform(45_000_000, 190_000_000)),
		CashBalance:   decimal.NewFromFloat(s.sampler.Uniform(1_000_000, 5_000_000)),
		AccruedIncome: decimal.NewFromFloat(s.sampler.Uniform(100_000, 500_000)),
		Source:        domain.SourceCustody,
	}
}

// analyticsRecord draws one market-data and analytics row.
func (s *Service) analyticsRecord(date time.Time, account string) domain.AnalyticsRecord {
	return domain.AnalyticsRecord{
		Date:            date,
		AccountID:       account,
		BenchmarkReturn: s.sampler.Normal(0.0008, 0.02),
		RiskScore:       s.sampler.Uniform(1, 10),
		ExpenseRatio:    s.sampler.Uniform(0.005, 0.025),
		Source:          domain.SourceAnalytics,
	}
}
