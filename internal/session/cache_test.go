package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// MockSourceGenerator is a mock implementation of SourceGenerator
type MockSourceGenerator struct {
	mock.Mock
}

func (m *MockSourceGenerator) GenerateSources() ([]domain.ValuationRecord, []domain.CustodyRecord, []domain.AnalyticsRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).([]domain.ValuationRecord),
		args.Get(1).([]domain.CustodyRecord),
		args.Get(2).([]domain.AnalyticsRecord),
		args.Error(3)
}

// MockUnifier is a mock implementation of Unifier
type MockUnifier struct {
	mock.Mock
}

func (m *MockUnifier) Unify(
	valuations []domain.ValuationRecord,
	custody []domain.CustodyRecord,
	analytics []domain.AnalyticsRecord,
) ([]domain.FundRecord, error) {
	args := m.Called(valuations, custody, analytics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundRecord), args.Error(1)
}

func fixtureTables() ([]domain.ValuationRecord, []domain.CustodyRecord, []domain.AnalyticsRecord, []domain.FundRecord) {
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	valuations := []domain.ValuationRecord{{
		Date:              date,
		AccountID:         "FUND001",
		NAVPerShare:       decimal.NewFromInt(100),
		TotalAssets:       decimal.NewFromInt(1_000_000),
		SharesOutstanding: decimal.NewFromInt(10_000),
		Source:            domain.SourceValuation,
	}}
	custody := []domain.CustodyRecord{{
		Date:      date,
		AccountID: "FUND001",
		Source:    domain.SourceCustody,
	}}
	analytics := []domain.AnalyticsRecord{{
		Date:      date,
		AccountID: "FUND001",
		Source:    domain.SourceAnalytics,
	}}
	unified := []domain.FundRecord{{
		Date:   date,
		FundID: "FUND001",
	}}

	return valuations, custody, analytics, unified
}

func TestCache_Tables_GeneratesLazilyAndOnlyOnce(t *testing.T) {
	valuations, custody, analytics, unified := fixtureTables()

	mockGenerator := new(MockSourceGenerator)
	mockUnifier := new(MockUnifier)

	mockGenerator.On("GenerateSources").Return(valuations, custody, analytics, nil)
	mockUnifier.On("Unify", valuations, custody, analytics).Return(unified, nil)

	cache := NewCache(mockGenerator, mockUnifier)

	// Nothing runs at construction time.
	mockGenerator.AssertNotCalled(t, "GenerateSources")

	first, err := cache.Tables()
	require.NoError(t, err)
	second, err := cache.Tables()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, unified, first.Unified)
	assert.Equal(t, valuations, first.Valuations)

	// One generation, one unification, no matter how many views read.
	mockGenerator.AssertNumberOfCalls(t, "GenerateSources", 1)
	mockUnifier.AssertNumberOfCalls(t, "Unify", 1)
}

func TestCache_Tables_PropagatesGenerationError(t *testing.T) {
	mockGenerator := new(MockSourceGenerator)
	mockUnifier := new(MockUnifier)

	mockGenerator.On("GenerateSources").Return(nil, nil, nil, errors.New("bad config"))

	cache := NewCache(mockGenerator, mockUnifier)

	_, err := cache.Tables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate source tables")
	mockUnifier.AssertNotCalled(t, "Unify")
}

func TestCache_Tables_PropagatesUnificationError(t *testing.T) {
	valuations, custody, analytics, _ := fixtureTables()

	mockGenerator := new(MockSourceGenerator)
	mockUnifier := new(MockUnifier)

	mockGenerator.On("GenerateSources").Return(valuations, custody, analytics, nil)
	mockUnifier.On("Unify", valuations, custody, analytics).Return(nil, errors.New("malformed row"))

	cache := NewCache(mockGenerator, mockUnifier)

	_, err := cache.Tables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unify source tables")
}

func TestCache_Tables_RetriesAfterError(t *testing.T) {
	// A failed run must not latch the cache: the next read tries again.
	valuations, custody, analytics, unified := fixtureTables()

	mockGenerator := new(MockSourceGenerator)
	mockUnifier := new(MockUnifier)

	mockGenerator.On("GenerateSources").Return(nil, nil, nil, errors.New("transient")).Once()
	mockGenerator.On("GenerateSources").Return(valuations, custody, analytics, nil)
	mockUnifier.On("Unify", valuations, custody, analytics).Return(unified, nil)

	cache := NewCache(mockGenerator, mockUnifier)

	_, err := cache.Tables()
	require.Error(t, err)

	tables, err := cache.Tables()
	require.NoError(t, err)
	assert.Equal(t, unified, tables.Unified)
}

func TestCache_ID_IsStable(t *testing.T) {
	cache := NewCache(new(MockSourceGenerator), new(MockUnifier))

	assert.Equal(t, cache.ID(), cache.ID())
	assert.NotEqual(t, cache.ID(), NewCache(new(MockSourceGenerator), new(MockUnifier)).ID())
}
