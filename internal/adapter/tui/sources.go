package tui

import (
	"fmt"
	"strings"

	"github.com/analyticshub/ahub-demo/internal/domain"
	"github.com/analyticshub/ahub-demo/internal/session"
)

const dateLayout = "2006-01-02"

// renderSources draws the source ingestion panel: connection status for each
// upstream feed, a cosmetic sync progress bar, and sample raw rows from the
// three generated tables.
func renderSources(styles Styles, tables session.Tables, syncBar string) string {
	var sb strings.Builder

	feeds := []struct {
		name, status, lastSync string
		records                int
	}{
		{domain.SourceValuation, "Connected", "2 min ago", len(tables.Valuations)},
		{domain.SourceCustody, "Connected", "5 min ago", len(tables.Custody)},
		{domain.SourceAnalytics, "Connected", "1 min ago", len(tables.Analytics)},
		{"BoardingPass", "Connected", "3 min ago", 2341},
		{"Morningstar", "Syncing", "Now", 0},
	}

	status := NewTable("Connected Feeds", "Source", "Status", "Last Sync", "Records")
	for _, feed := range feeds {
		status.AddRow(feed.name, feed.status, feed.lastSync, fmt.Sprintf("%d", feed.records))
	}
	sb.WriteString(status.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Muted.Render("Morningstar sync in progress"))
	sb.WriteString("\n")
	sb.WriteString(syncBar)
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("Sample Raw Data"))
	sb.WriteString("\n\n")

	valuation := NewTable("Fund Accounting Valuation Details ("+domain.SourceValuation+")",
		"Date", "Account", "NAV", "Total Assets", "Shares Outstanding")
	for _, row := range headValuations(tables.Valuations, 5) {
		valuation.AddRow(
			row.Date.Format(dateLayout),
			row.AccountID,
			row.NAVPerShare.StringFixed(4),
			FormatUSD(row.TotalAssets),
			row.SharesOutstanding.StringFixed(0),
		)
	}
	sb.WriteString(valuation.Render(styles))
	sb.WriteString("\n")

	custody := NewTable("Custody and Settlement Data ("+domain.SourceCustody+")",
		"Date", "Account", "Market Value", "Cash Balance", "Accrued Income")
	for _, row := range headCustody(tables.Custody, 5) {
		custody.AddRow(
			row.Date.Format(dateLayout),
			row.AccountID,
			FormatUSD(row.MarketValue),
			FormatUSD(row.CashBalance),
			FormatUSD(row.AccruedIncome),
		)
	}
	sb.WriteString(custody.Render(styles))
	sb.WriteString("\n")

	analytics := NewTable("Market Data and Analytics ("+domain.SourceAnalytics+")",
		"Date", "Account", "Benchmark Return", "Risk Score", "Expense Ratio")
	for _, row := range headAnalytics(tables.Analytics, 5) {
		analytics.AddRow(
			row.Date.Format(dateLayout),
			row.AccountID,
			fmt.Sprintf("%.4f", row.BenchmarkReturn),
			fmt.Sprintf("%.2f", row.RiskScore),
			fmt.Sprintf("%.4f", row.ExpenseRatio),
		)
	}
	sb.WriteString(analytics.Render(styles))

	return sb.String()
}

func headValuations(rows []domain.ValuationRecord, n int) []domain.ValuationRecord {
	if len(rows) < n {
		return rows
	}
	return rows[:n]
}

func headCustody(rows []domain.CustodyRecord, n int) []domain.CustodyRecord {
	if len(rows) < n {
		return rows
	}
	return rows[:n]
}

func headAnalytics(rows []domain.AnalyticsRecord, n int) []domain.AnalyticsRecord {
	if len(rows) < n {
		return rows
	}
	return rows[:n]
}
