package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static tabular panel data as aligned text columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given title and headers.
func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render produces the styled table text.
func (t *Table) Render(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Subtitle.Render(t.Title))
		sb.WriteString("\n")
	}

	for i, header := range t.Headers {
		sb.WriteString(styles.Bold.Render(pad(header, widths[i])))
		if i < len(t.Headers)-1 {
			sb.WriteString(styles.Muted.Render(" | "))
		}
	}
	sb.WriteString("\n")

	totalWidth := 0
	for _, w := range widths {
		totalWidth += w
	}
	totalWidth += 3 * (len(t.Headers) - 1)
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(styleCell(styles, cell, widths[i]))
			if i < len(t.Headers)-1 {
				sb.WriteString(styles.Muted.Render(" | "))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// styleCell colors status-like cells and pads everything to the column
// width. Padding happens before styling so ANSI codes don't skew alignment.
func styleCell(styles Styles, cell string, width int) string {
	padded := pad(cell, width)
	switch {
	case strings.HasPrefix(cell, "PASS") || strings.HasPrefix(cell, "OK") || strings.HasPrefix(cell, "Complete"):
		return styles.Good.Render(padded)
	case strings.HasPrefix(cell, "WARN") || strings.HasPrefix(cell, "Review") || strings.HasPrefix(cell, "Monitor") || strings.HasPrefix(cell, "Processing") || strings.HasPrefix(cell, "Syncing"):
		return styles.Warning.Render(padded)
	case strings.HasPrefix(cell, "FAIL") || strings.HasPrefix(cell, "ERROR"):
		return styles.Bad.Render(padded)
	default:
		return padded
	}
}

func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
