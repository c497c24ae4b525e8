package tui

import (
	"fmt"
	"strings"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// renderSilver draws the data vault panel: integration statistics, a sample
// of the unified table produced by the unifier, the lineage table and the
// bronze-vs-silver quality comparison chart.
func renderSilver(styles Styles, unified []domain.FundRecord) string {
	var sb strings.Builder

	sb.WriteString(styles.LayerHeader.Render("Purpose: Unified data integration and business rule application"))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("Integration Stats"))
	sb.WriteString("\n")
	sb.WriteString(metric(styles, "Sources Unified", "5", "+2"))
	sb.WriteString(metric(styles, "Data Quality", "96.2%", "+12%"))
	sb.WriteString(metric(styles, "Records Matched", "98.7%", "+8%"))
	sb.WriteString("\n")

	table := NewTable("Unified Fund Data (Business Data Vault)",
		"Date", "Fund", "NAV/Share", "Total Net Assets", "Market Value", "Cash Balance", "Bench Return", "Risk", "Quality")
	limit := len(unified)
	if limit > 8 {
		limit = 8
	}
	for _, row := range unified[:limit] {
		table.AddRow(
			row.Date.Format(dateLayout),
			row.FundID,
			row.NAVPerShare.StringFixed(4),
			FormatUSD(row.TotalNetAssets),
			FormatUSD(row.MarketValue),
			FormatUSD(row.CashBalance),
			fmt.Sprintf("%.4f", row.BenchmarkReturn),
			fmt.Sprintf("%.2f", row.RiskScore),
			fmt.Sprintf("%.1f", row.DataQualityScore),
		)
	}
	sb.WriteString(table.Render(styles))
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("showing %d of %d unified rows", limit, len(unified))))
	sb.WriteString("\n\n")

	lineage := NewTable("Data Lineage & Integration",
		"Fund ID", "Source System", "Data Element", "Last Updated", "Quality Score")
	lineage.AddRow("FUND001", domain.SourceValuation, "NAV", "2024-01-15 09:30", "99.2")
	lineage.AddRow("FUND001", domain.SourceCustody, "Market Value", "2024-01-15 09:32", "97.8")
	lineage.AddRow("FUND002", domain.SourceValuation, "NAV", "2024-01-15 09:30", "98.9")
	lineage.AddRow("FUND002", domain.SourceAnalytics, "Benchmark Return", "2024-01-15 09:28", "99.5")
	sb.WriteString(lineage.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Data Quality: Bronze vs Silver Layer"))
	sb.WriteString("\n")

	metrics := []string{"Completeness", "Accuracy", "Consistency", "Timeliness", "Validity"}
	bronze := []float64{87.2, 91.5, 78.3, 85.7, 89.1}
	silver := []float64{96.8, 98.2, 95.4, 97.1, 98.9}

	for i, name := range metrics {
		sb.WriteString(pad(name, 14))
		sb.WriteString(styles.Bad.Render(strings.Repeat("█", int(bronze[i]/2))))
		sb.WriteString(fmt.Sprintf(" %.1f (bronze)\n", bronze[i]))
		sb.WriteString(pad("", 14))
		sb.WriteString(styles.Good.Render(strings.Repeat("█", int(silver[i]/2))))
		sb.WriteString(fmt.Sprintf(" %.1f (silver)\n", silver[i]))
	}

	return sb.String()
}
