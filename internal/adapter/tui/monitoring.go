package tui

import (
	"fmt"
	"strings"

	"github.com/analyticshub/ahub-demo/internal/usecase/reporting"
)

// renderMonitoring draws the monitoring panel: system health metrics, the
// alert feed, the synthetic data-quality trend and the predictive panels.
func renderMonitoring(styles Styles, trend []reporting.QualityTrendPoint) string {
	var sb strings.Builder

	sb.WriteString(styles.LayerHeader.Render("Purpose: Proactive monitoring and self-optimizing systems"))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("System Health"))
	sb.WriteString("\n")
	sb.WriteString(metric(styles, "Uptime", "99.97%", "+0.02%"))
	sb.WriteString(metric(styles, "Response Time", "0.88s", "-0.45s"))
	sb.WriteString(metric(styles, "Throughput", "1.2M rec/hr", "+15%"))
	sb.WriteString(metric(styles, "Active Pipelines", "12", "0"))
	sb.WriteString(metric(styles, "Success Rate", "99.8%", "+0.3%"))
	sb.WriteString(metric(styles, "Compliance Score", "98.5%", "+1.2%"))
	sb.WriteString("\n")

	alerts := NewTable("Active Alerts & Notifications", "Time", "Type", "Component", "Message", "Action")
	alerts.AddRow("09:31:23", "INFO", "Data Quality", "FUND004 data quality score improved to 99.2%", "None")
	alerts.AddRow("09:28:45", "WARN", "Processing", "Processing time for State Street feed increased by 15%", "Monitor")
	alerts.AddRow("09:25:12", "OK", "Integration", "FactSet integration completed successfully - 1,056 records", "None")
	alerts.AddRow("09:22:33", "INFO", "Security", "Daily security scan completed - no issues found", "None")
	sb.WriteString(alerts.Render(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("Data Quality Trends (Last %d Days)", len(trend))))
	sb.WriteString("\n")
	names := []string{"Overall", "Completeness", "Accuracy", "Timeliness"}
	pick := []func(reporting.QualityTrendPoint) float64{
		func(p reporting.QualityTrendPoint) float64 { return p.Overall },
		func(p reporting.QualityTrendPoint) float64 { return p.Completeness },
		func(p reporting.QualityTrendPoint) float64 { return p.Accuracy },
		func(p reporting.QualityTrendPoint) float64 { return p.Timeliness },
	}
	for i, name := range names {
		values := make([]float64, 0, len(trend))
		for _, point := range trend {
			values = append(values, pick[i](point))
		}
		sb.WriteString(pad(name, 14))
		sb.WriteString(styles.Subtitle.Render(Sparkline(values)))
		if len(values) > 0 {
			sb.WriteString(fmt.Sprintf("  %.1f → %.1f", values[0], values[len(values)-1]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	predictions := NewTable("Predicted Issues (Next 24 Hours)", "Risk Level", "Component", "Prediction", "Confidence")
	predictions.AddRow("Medium", "State Street Feed", "Processing time may increase by 20%", "85%")
	predictions.AddRow("Low", "Data Quality", "Quality scores expected to remain stable", "92%")
	predictions.AddRow("Medium", "Processing Load", "Peak load expected at 2 PM EST", "78%")
	predictions.AddRow("Low", "Storage Capacity", "Storage utilization normal", "94%")
	sb.WriteString(predictions.Render(styles))
	sb.WriteString("\n")

	optimizations := NewTable("Auto-Optimization Actions", "Time", "Action", "Impact")
	optimizations.AddRow("09:15", "Increased processing capacity for peak load", "+15% throughput")
	optimizations.AddRow("09:20", "Optimized query execution plan", "-0.3s latency")
	optimizations.AddRow("09:25", "Adjusted data quality thresholds", "+2% accuracy")
	optimizations.AddRow("09:30", "Balanced workload across clusters", "+8% efficiency")
	sb.WriteString(optimizations.Render(styles))

	return sb.String()
}
