package unifier

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/analyticshub/ahub-demo/internal/adapter/random"
	"github.com/analyticshub/ahub-demo/internal/domain"
	"github.com/analyticshub/ahub-demo/internal/usecase/generator"
)

// MockSampler is a mock implementation of domain.Sampler
type MockSampler struct {
	mock.Mock
}

func (m *MockSampler) Uniform(min, max float64) float64 {
	args := m.Called(min, max)
	return args.Get(0).(float64)
}

func (m *MockSampler) Normal(mean, stdDev float64) float64 {
	args := m.Called(mean, stdDev)
	return args.Get(0).(float64)
}

func day(n int) time.Time {
	return time.Date(2024, time.January, 1+n, 0, 0, 0, 0, time.UTC)
}

func valuationRow(date time.Time, account string, nav, assets, shares int64) domain.ValuationRecord {
	return domain.ValuationRecord{
		Date:              date,
		AccountID:         account,
		NAVPerShare:       decimal.NewFromInt(nav),
		TotalAssets:       decimal.NewFromInt(assets),
		SharesOutstanding: decimal.NewFromInt(shares),
		Source:            domain.SourceValuation,
	}
}

func custodyRow(date time.Time, account string, marketValue, cash int64) domain.CustodyRecord {
	return domain.CustodyRecord{
		Date:          date,
		AccountID:     account,
		MarketValue:   decimal.NewFromInt(marketValue),
		CashBalance:   decimal.NewFromInt(cash),
		AccruedIncome: decimal.NewFromInt(250_000),
		Source:        domain.SourceCustody,
	}
}

func analyticsRow(date time.Time, account string, benchmarkReturn, riskScore float64) domain.AnalyticsRecord {
	return domain.AnalyticsRecord{
		Date:            date,
		AccountID:       account,
		BenchmarkReturn: benchmarkReturn,
		RiskScore:       riskScore,
		ExpenseRatio:    0.01,
		Source:          domain.SourceAnalytics,
	}
}

// qualityOnlySampler returns a mock that expects only the decorative
// data-quality draw.
func qualityOnlySampler() *MockSampler {
	mockSampler := new(MockSampler)
	mockSampler.On("Uniform", 85.0, 99.0).Return(92.0)
	return mockSampler
}

func TestService_Unify_MissingCustodyScenario(t *testing.T) {
	// Scenario from the product definition: one valuation row, empty
	// custody and analytics tables. Custody fields must be the exact
	// fixed fractions; analytics fields must come from fresh draws.
	mockSampler := new(MockSampler)
	mockSampler.On("Uniform", 85.0, 99.0).Return(92.0)
	mockSampler.On("Normal", 0.0008, 0.02).Return(0.0012)
	mockSampler.On("Uniform", 1.0, 10.0).Return(6.5)

	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
	}

	unified, err := service.Unify(valuations, nil, nil)
	require.NoError(t, err)
	require.Len(t, unified, 1)

	row := unified[0]
	assert.Equal(t, "F1", row.FundID)
	assert.True(t, row.MarketValue.Equal(decimal.NewFromInt(950_000)),
		"market value should be exactly 95%% of total net assets, got %s", row.MarketValue)
	assert.True(t, row.CashBalance.Equal(decimal.NewFromInt(50_000)),
		"cash balance should be exactly 5%% of total net assets, got %s", row.CashBalance)
	assert.Equal(t, 0.0012, row.BenchmarkReturn)
	assert.Equal(t, 6.5, row.RiskScore)
	assert.Equal(t, 92.0, row.DataQualityScore)

	mockSampler.AssertExpectations(t)
}

func TestService_Unify_AllSourcesPresentCopiesDirectly(t *testing.T) {
	mockSampler := qualityOnlySampler()
	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
	}
	custody := []domain.CustodyRecord{
		custodyRow(day(0), "F1", 880_000, 44_000),
	}
	analytics := []domain.AnalyticsRecord{
		analyticsRow(day(0), "F1", 0.002, 3.2),
	}

	unified, err := service.Unify(valuations, custody, analytics)
	require.NoError(t, err)
	require.Len(t, unified, 1)

	row := unified[0]
	assert.True(t, row.MarketValue.Equal(decimal.NewFromInt(880_000)))
	assert.True(t, row.CashBalance.Equal(decimal.NewFromInt(44_000)))
	assert.Equal(t, 0.002, row.BenchmarkReturn)
	assert.Equal(t, 3.2, row.RiskScore)

	// No fallback draw may happen when both feeds carry the key.
	mockSampler.AssertNotCalled(t, "Normal", 0.0008, 0.02)
	mockSampler.AssertNotCalled(t, "Uniform", 1.0, 10.0)
}

func TestService_Unify_ValuationFieldsAlwaysCopiedExactly(t *testing.T) {
	mockSampler := qualityOnlySampler()
	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 101, 2_000_000, 20_000),
		valuationRow(day(0), "F2", 99, 3_000_000, 30_000),
	}
	custody := []domain.CustodyRecord{
		custodyRow(day(0), "F1", 1_900_000, 95_000),
		custodyRow(day(0), "F2", 2_850_000, 142_500),
	}
	analytics := []domain.AnalyticsRecord{
		analyticsRow(day(0), "F1", 0.001, 4),
		analyticsRow(day(0), "F2", 0.003, 7),
	}

	unified, err := service.Unify(valuations, custody, analytics)
	require.NoError(t, err)
	require.Len(t, unified, 2)

	for i := range unified {
		assert.True(t, unified[i].NAVPerShare.Equal(valuations[i].NAVPerShare))
		assert.True(t, unified[i].TotalNetAssets.Equal(valuations[i].TotalAssets))
		assert.True(t, unified[i].SharesOutstanding.Equal(valuations[i].SharesOutstanding))
		assert.Equal(t, valuations[i].Date, unified[i].Date)
		assert.Equal(t, valuations[i].AccountID, unified[i].FundID)
	}
}

func TestService_Unify_AsymmetricFallbackPolicy(t *testing.T) {
	// Custody fallback is deterministic (fixed fraction of assets);
	// analytics fallback is a fresh draw. This asymmetry is intentional
	// product behavior: changing it must break this test.
	mockSampler := new(MockSampler)
	mockSampler.On("Uniform", 85.0, 99.0).Return(90.0)
	mockSampler.On("Normal", 0.0008, 0.02).Return(-0.004)
	mockSampler.On("Uniform", 1.0, 10.0).Return(8.1)

	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 4_000_000, 40_000),
	}

	unified, err := service.Unify(valuations, nil, nil)
	require.NoError(t, err)
	require.Len(t, unified, 1)

	// Deterministic side: exact products, no randomness involved.
	assert.True(t, unified[0].MarketValue.Equal(decimal.NewFromInt(3_800_000)))
	assert.True(t, unified[0].CashBalance.Equal(decimal.NewFromInt(200_000)))

	// Resampled side: values come from the sampler, once per missing row.
	assert.Equal(t, -0.004, unified[0].BenchmarkReturn)
	assert.Equal(t, 8.1, unified[0].RiskScore)
	mockSampler.AssertNumberOfCalls(t, "Normal", 1)
}

func TestService_Unify_RowCountMatchesValuationTable(t *testing.T) {
	generatorService := generator.NewService(random.New(random.DefaultSeed), generator.DefaultConfig())
	valuations, custody, analytics, err := generatorService.GenerateSources()
	require.NoError(t, err)

	service := NewService(random.New(random.DefaultSeed))
	unified, err := service.Unify(valuations, custody, analytics)
	require.NoError(t, err)

	// Left join driven by valuation keys: no fan-out, no row loss.
	assert.Len(t, unified, len(valuations))

	valuationKeys := make(map[string]bool, len(valuations))
	for i := range valuations {
		valuationKeys[valuations[i].Date.Format("2006-01-02")+"/"+valuations[i].AccountID] = true
	}
	for i := range unified {
		assert.True(t, valuationKeys[unified[i].Date.Format("2006-01-02")+"/"+unified[i].FundID],
			"every unified key must exist in the valuation table")
	}
}

func TestService_Unify_DuplicateKeyFirstMatchWins(t *testing.T) {
	mockSampler := qualityOnlySampler()
	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
	}
	custody := []domain.CustodyRecord{
		custodyRow(day(0), "F1", 700_000, 35_000),
		custodyRow(day(0), "F1", 999_999, 1), // duplicate key, must be ignored
	}
	analytics := []domain.AnalyticsRecord{
		analyticsRow(day(0), "F1", 0.001, 2),
		analyticsRow(day(0), "F1", 0.009, 9), // duplicate key, must be ignored
	}

	unified, err := service.Unify(valuations, custody, analytics)
	require.NoError(t, err)
	require.Len(t, unified, 1)

	assert.True(t, unified[0].MarketValue.Equal(decimal.NewFromInt(700_000)))
	assert.Equal(t, 0.001, unified[0].BenchmarkReturn)
	assert.Equal(t, 2.0, unified[0].RiskScore)
}

func TestService_Unify_FailsOnMalformedRow(t *testing.T) {
	mockSampler := new(MockSampler)
	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
		{Date: day(1)}, // missing account id
	}

	unified, err := service.Unify(valuations, nil, nil)
	require.Error(t, err)
	assert.Nil(t, unified)

	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestService_Unify_FailsOnMalformedCustodyRow(t *testing.T) {
	mockSampler := new(MockSampler)
	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
	}
	custody := []domain.CustodyRecord{
		{AccountID: "F1"}, // missing date
	}

	unified, err := service.Unify(valuations, custody, nil)
	require.Error(t, err)
	assert.Nil(t, unified)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, domain.SourceCustody, validationErr.Source)
}

func TestService_Unify_Idempotent(t *testing.T) {
	// With the sampler pinned, two calls over the same inputs must yield
	// identical output: the unifier keeps no hidden state.
	mockSampler := new(MockSampler)
	mockSampler.On("Uniform", 85.0, 99.0).Return(91.0)
	mockSampler.On("Normal", 0.0008, 0.02).Return(0.002)
	mockSampler.On("Uniform", 1.0, 10.0).Return(4.4)

	service := NewService(mockSampler)

	valuations := []domain.ValuationRecord{
		valuationRow(day(0), "F1", 100, 1_000_000, 10_000),
		valuationRow(day(1), "F1", 101, 1_100_000, 10_000),
	}
	custody := []domain.CustodyRecord{
		custodyRow(day(0), "F1", 900_000, 45_000),
	}

	first, err := service.Unify(valuations, custody, nil)
	require.NoError(t, err)
	second, err := service.Unify(valuations, custody, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Unify_EmptyValuationTableYieldsEmptyResult(t *testing.T) {
	service := NewService(new(MockSampler))

	unified, err := service.Unify(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, unified)
}
