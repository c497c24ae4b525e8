// Package tui renders the demo dashboard in the terminal. It is a pure
// consumer of the session cache and the reporting service: tables of records
// in, styled text out.
package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette for the AHUB demo.
var (
	ColorPrimary   = lipgloss.Color("#1e3a8a") // deep blue, header gradient start
	ColorAccent    = lipgloss.Color("#3b82f6") // bright blue, header gradient end
	ColorGood      = lipgloss.Color("#10b981") // green, healthy status
	ColorWarning   = lipgloss.Color("#f59e0b") // amber, needs attention
	ColorBad       = lipgloss.Color("#ef4444") // red, failures
	ColorMuted     = lipgloss.Color("#64748b") // slate, secondary text
	ColorLayerBand = lipgloss.Color("#f8fafc") // pale band behind layer headers
)

// Styles holds every lipgloss style used by the dashboard sections.
type Styles struct {
	Header      lipgloss.Style
	Tagline     lipgloss.Style
	SectionName lipgloss.Style
	LayerHeader lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Bold        lipgloss.Style
	Muted       lipgloss.Style
	Good        lipgloss.Style
	Warning     lipgloss.Style
	Bad         lipgloss.Style
	MetricName  lipgloss.Style
	MetricValue lipgloss.Style
	MetricDelta lipgloss.Style
	Card        lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	Footer      lipgloss.Style
}

// DefaultStyles builds the dashboard styles from the brand palette.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 2),
		Tagline: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true),
		SectionName: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true),
		LayerHeader: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(ColorLayerBand).
			Bold(true).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),
		Body:  lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ColorMuted),
		Good:  lipgloss.NewStyle().Foreground(ColorGood).Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),
		Bad: lipgloss.NewStyle().Foreground(ColorBad).Bold(true),
		MetricName: lipgloss.NewStyle().
			Foreground(ColorMuted),
		MetricValue: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		MetricDelta: lipgloss.NewStyle().
			Foreground(ColorGood),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1),
		NavInactive: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
