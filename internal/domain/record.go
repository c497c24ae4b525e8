package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source system tags attached to every generated row, matching the upstream
// feed each table simulates.
const (
	SourceValuation = "Northern Trust"
	SourceCustody   = "State Street"
	SourceAnalytics = "FactSet"
)

// ValuationRecord represents one row of the fund-accounting valuation feed.
// This feed is authoritative: it covers the full account universe, and the
// unified table is keyed off its (Date, AccountID) pairs.
type ValuationRecord struct {
	Date              time.Time
	AccountID         string
	NAVPerShare       decimal.Decimal
	TotalAssets       decimal.Decimal
	SharesOutstanding decimal.Decimal
	Source            string
}

// Validate ensures the record carries both key fields.
// Returns a ValidationError if either is missing.
func (r *ValuationRecord) Validate() error {
	return validateKeys(SourceValuation, r.Date, r.AccountID)
}

// CustodyRecord represents one row of the custody and settlement feed.
// The feed covers a subset of the valuation universe, so the unifier must
// fall back to derived values for accounts it does not carry.
type CustodyRecord struct {
	Date          time.Time
	AccountID     string
	MarketValue   decimal.Decimal
	CashBalance   decimal.Decimal
	AccruedIncome decimal.Decimal
	Source        string
}

// Validate ensures the record carries both key fields.
func (r *CustodyRecord) Validate() error {
	return validateKeys(SourceCustody, r.Date, r.AccountID)
}

// AnalyticsRecord represents one row of the market-data and analytics feed.
// Like the custody feed it covers only a subset of the valuation universe.
type AnalyticsRecord struct {
	Date            time.Time
	AccountID       string
	BenchmarkReturn float64
	RiskScore       float64
	ExpenseRatio    float64
	Source          string
}

// Validate ensures the record carries both key fields.
func (r *AnalyticsRecord) Validate() error {
	return validateKeys(SourceAnalytics, r.Date, r.AccountID)
}

// FundRecord is one row of the unified (silver layer) table, keyed by
// (Date, FundID). Valuation fields are copied verbatim; custody fields fall
// back to fixed fractions of total assets; analytics fields fall back to a
// fresh draw from their generating distributions.
type FundRecord struct {
	Date              time.Time
	FundID            string
	NAVPerShare       decimal.Decimal
	TotalNetAssets    decimal.Decimal
	SharesOutstanding decimal.Decimal
	MarketValue       decimal.Decimal
	CashBalance       decimal.Decimal
	BenchmarkReturn   float64
	RiskScore         float64
	DataQualityScore  float64
}

// validateKeys checks the (date, account) key pair shared by all source
// record kinds.
func validateKeys(source string, date time.Time, accountID string) error {
	if date.IsZero() {
		return NewValidationError(source, "record is missing a date")
	}
	if accountID == "" {
		return NewValidationError(source, "record is missing an account id")
	}
	return nil
}
