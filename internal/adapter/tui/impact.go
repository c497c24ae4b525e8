package tui

import "strings"

// renderImpact draws the business impact panel: ROI metrics, the before and
// after comparison, stakeholder benefits and the roadmap.
func renderImpact(styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.LayerHeader.Render("Purpose: Demonstrating tangible business value and competitive advantage"))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("Return on Investment"))
	sb.WriteString("\n")
	sb.WriteString(metric(styles, "Time Savings", "75%", "Manual → Auto"))
	sb.WriteString(metric(styles, "Error Reduction", "88%", "Data inconsistencies"))
	sb.WriteString(metric(styles, "Faster Insights", "10x", "Hours → Minutes"))
	sb.WriteString(metric(styles, "Cost Reduction", "$2.1M", "Annual savings"))
	sb.WriteString("\n")

	comparison := NewTable("Before vs After AHUB 2.0", "Metric", "Before", "After", "Improvement")
	comparison.AddRow("Report Generation Time", "4-6 hours", "5-10 minutes", "95% faster")
	comparison.AddRow("Data Quality Issues", "15-20 per week", "1-2 per week", "90% reduction")
	comparison.AddRow("Manual Interventions", "40+ per day", "3-5 per day", "87% reduction")
	comparison.AddRow("Data Latency", "2-4 hours", "< 5 minutes", "95% faster")
	comparison.AddRow("Compliance Violations", "2-3 per month", "0 per month", "100% reduction")
	comparison.AddRow("System Downtime", "8 hours/month", "< 1 hour/month", "87% reduction")
	sb.WriteString(comparison.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Stakeholder Benefits"))
	sb.WriteString("\n")
	stakeholders := []struct {
		name     string
		benefits []string
	}{
		{"Plan Sponsors", []string{
			"Real-time visibility into plan performance and health",
			"Automated compliance reporting and monitoring",
			"Risk mitigation through predictive analytics",
		}},
		{"Advisors", []string{
			"Faster proposal generation (hours → minutes)",
			"Personalized recommendations based on comprehensive data",
			"Predictive insights for proactive client management",
		}},
		{"Plan Participants", []string{
			"Real-time account information and updates",
			"Personalized retirement planning recommendations",
			"Proactive notifications about important changes",
		}},
		{"Operations Teams", []string{
			"85% automation of manual processes",
			"Proactive issue detection and resolution",
			"Improved data quality and consistency",
		}},
	}
	for _, s := range stakeholders {
		sb.WriteString("  " + styles.Bold.Render(s.name) + "\n")
		for _, benefit := range s.benefits {
			sb.WriteString("    " + styles.Good.Render("✓") + " " + benefit + "\n")
		}
	}
	sb.WriteString("\n")

	roadmap := NewTable("Future Roadmap", "Quarter", "Feature", "Impact")
	roadmap.AddRow("Q2 2025", "Advanced AI Workflows", "Further automation of complex processes")
	roadmap.AddRow("Q3 2025", "Predictive Participant Behavior", "Personalized participant engagement")
	roadmap.AddRow("Q4 2025", "Natural Language Queries", "Self-service analytics for all users")
	roadmap.AddRow("Q1 2026", "Full Ecosystem Integration", "Seamless data flow across all products")
	sb.WriteString(roadmap.Render(styles))

	return sb.String()
}
