package tui

import "strings"

// renderOverview draws the architecture overview panel: the product's key
// differentiators, headline status metrics and the medallion layer diagram.
func renderOverview(styles Styles) string {
	var sb strings.Builder

	differentiators := []struct {
		title, description string
	}{
		{"Unified Data", "Single source of truth for all retirement data"},
		{"Process Automation", "Intelligent workflows that minimize manual intervention"},
		{"Predictive Intelligence", "AI that anticipates and prevents issues"},
		{"Stakeholder Design", "Personalized experiences for each industry stakeholder"},
		{"Compliance Automation", "Proactive monitoring and reporting"},
		{"Self-Optimizing Systems", "Systems that learn and improve autonomously"},
		{"Seamless Integrations", "Seamless connections to industry platforms"},
	}

	sb.WriteString(styles.Subtitle.Render("Key Differentiators"))
	sb.WriteString("\n")
	for _, d := range differentiators {
		sb.WriteString("  " + styles.Bold.Render(d.title) + "\n")
		sb.WriteString("  " + styles.Muted.Render(d.description) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Current Status"))
	sb.WriteString("\n")
	sb.WriteString(metric(styles, "Data Sources", "11", "+2"))
	sb.WriteString(metric(styles, "Data Quality", "96.2%", "+12%"))
	sb.WriteString(metric(styles, "Processing Speed", "0.88s", "-75%"))
	sb.WriteString(metric(styles, "Automation", "85%", "+68%"))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Architecture Layers"))
	sb.WriteString("\n")
	layers := []string{
		"Gold   - Business Intelligence",
		"Silver - Data Vault",
		"Bronze - Raw Staging",
		"Source Data",
	}
	for i, layer := range layers {
		sb.WriteString("  " + styles.LayerHeader.Render(layer) + "\n")
		if i < len(layers)-1 {
			sb.WriteString(styles.Muted.Render("        ▲") + "\n")
		}
	}

	return sb.String()
}

// metric renders one name/value/delta line in the dashboard metric style.
func metric(styles Styles, name, value, delta string) string {
	return "  " + styles.MetricName.Render(pad(name, 22)) +
		styles.MetricValue.Render(pad(value, 12)) +
		styles.MetricDelta.Render(delta) + "\n"
}
