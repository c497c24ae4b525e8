package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuationRecord_Validate_Valid(t *testing.T) {
	record := ValuationRecord{
		Date:              time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		AccountID:         "FUND001",
		NAVPerShare:       decimal.NewFromInt(100),
		TotalAssets:       decimal.NewFromInt(1_000_000),
		SharesOutstanding: decimal.NewFromInt(10_000),
		Source:            SourceValuation,
	}

	assert.NoError(t, record.Validate())
}

func TestValuationRecord_Validate_MissingDate(t *testing.T) {
	record := ValuationRecord{
		AccountID: "FUND001",
	}

	err := record.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, SourceValuation, validationErr.Source)
}

func TestValuationRecord_Validate_MissingAccountID(t *testing.T) {
	record := ValuationRecord{
		Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	err := record.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestCustodyRecord_Validate_MissingAccountID(t *testing.T) {
	record := CustodyRecord{
		Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	err := record.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, SourceCustody, validationErr.Source)
}

func TestAnalyticsRecord_Validate_MissingDate(t *testing.T) {
	record := AnalyticsRecord{
		AccountID: "FUND004",
	}

	err := record.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, SourceAnalytics, validationErr.Source)
}

func TestConfigError_Message(t *testing.T) {
	err := NewConfigError("date window must cover at least one day")
	assert.Equal(t, "invalid generation config: date window must cover at least one day", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError(SourceCustody, "record is missing a date")
	assert.Equal(t, "invalid State Street row: record is missing a date", err.Error())
}
