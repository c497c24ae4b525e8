package tui

import "strings"

// renderBronze draws the raw staging panel: staging table statistics, the
// validation check grid and a before/after transformation example. The
// numbers are illustrative narrative data, as in every bronze panel figure.
func renderBronze(styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.LayerHeader.Render("Purpose: Initial staging and validation of raw data"))
	sb.WriteString("\n\n")

	staging := NewTable("Staging Tables Overview",
		"Source", "Records Ingested", "Quality Score", "Processing Time (s)", "Status")
	staging.AddRow("Northern Trust", "1,247", "98.2", "0.8", "Complete")
	staging.AddRow("State Street", "892", "96.7", "0.6", "Complete")
	staging.AddRow("FactSet", "1,056", "99.1", "0.9", "Complete")
	staging.AddRow("BoardingPass", "2,341", "97.4", "1.2", "Complete")
	staging.AddRow("Morningstar", "0", "-", "-", "Processing")
	sb.WriteString(staging.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Performance"))
	sb.WriteString("\n")
	sb.WriteString(metric(styles, "Avg Processing Time", "0.88s", "-75%"))
	sb.WriteString(metric(styles, "Success Rate", "99.97%", "+0.12%"))
	sb.WriteString(metric(styles, "Data Volume", "5.5GB", "+15%"))
	sb.WriteString("\n")

	checks := NewTable("Data Validation Results",
		"Check Type", "Northern Trust", "State Street", "FactSet", "BoardingPass")
	checks.AddRow("Schema Validation", "PASS", "PASS", "PASS", "PASS")
	checks.AddRow("Null Value Check", "PASS", "PASS", "PASS", "WARN 5 nulls")
	checks.AddRow("Data Type Validation", "PASS", "PASS", "PASS", "PASS")
	checks.AddRow("Range Validation", "WARN 2 outliers", "PASS", "PASS", "PASS")
	checks.AddRow("Duplicate Detection", "PASS", "PASS", "PASS", "FAIL 12 dupes")
	sb.WriteString(checks.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Data Transformation Example"))
	sb.WriteString("\n\n")

	before := NewTable("Raw Northern Trust Data",
		"Account ID (FA)", "Total MV Securities (Base)", "NAV (8 Precision)", "As of Date")
	before.AddRow("FUND001", "$50,000,000.00", "100.12345678", "2024-01-15")
	before.AddRow("FUND002", "$75,000,000.00", "98.87654321", "2024-01-15")
	sb.WriteString(before.Render(styles))
	sb.WriteString("\n")

	after := NewTable("Cleaned Staging Data",
		"account_id", "total_market_value", "nav_per_share", "valuation_date", "source_system")
	after.AddRow("FUND001", "50000000.00", "100.12345678", "2024-01-15", "Northern Trust")
	after.AddRow("FUND002", "75000000.00", "98.87654321", "2024-01-15", "Northern Trust")
	sb.WriteString(after.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Applied Transformations"))
	sb.WriteString("\n")
	transformations := []string{
		"Removed special characters from column names",
		"Converted currency strings to numeric values",
		"Standardized date formats",
		"Added audit fields (source_system, ingestion_timestamp)",
		"Applied data type validations",
	}
	for _, transformation := range transformations {
		sb.WriteString("  " + styles.Good.Render("✓") + " " + transformation + "\n")
	}

	return sb.String()
}
