package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/analyticshub/ahub-demo/internal/domain"
	"github.com/analyticshub/ahub-demo/internal/session"
	"github.com/analyticshub/ahub-demo/internal/usecase/reporting"
)

// Section identifies one demo page.
type Section int

const (
	SectionOverview Section = iota
	SectionSources
	SectionBronze
	SectionSilver
	SectionGold
	SectionMonitoring
	SectionImpact
)

var sectionTitles = []string{
	"Overview",
	"Source Ingestion",
	"Bronze - Raw Staging",
	"Silver - Data Vault",
	"Gold - Business Intelligence",
	"Monitoring",
	"Business Impact",
}

// qualityTrendDays is the window of the monitoring page's trend chart.
const qualityTrendDays = 15

type tablesLoadedMsg struct {
	tables session.Tables
	err    error
}

type syncTickMsg time.Time

// Model is the dashboard's bubbletea model. It owns no data of its own:
// tables come from the session cache, aggregates from the reporting service.
type Model struct {
	cache   *session.Cache
	sampler domain.Sampler
	styles  Styles

	viewport     viewport.Model
	syncProgress progress.Model

	section     Section
	width       int
	height      int
	ready       bool
	syncPercent float64

	loaded  bool
	loadErr error
	tables  session.Tables
	reports *reporting.Service
	trend   []reporting.QualityTrendPoint
}

// NewModel creates the dashboard model over a session cache. The sampler
// feeds the monitoring page's synthetic quality trend.
func NewModel(cache *session.Cache, sampler domain.Sampler) Model {
	prog := progress.New(progress.WithGradient("#1e3a8a", "#3b82f6"))
	prog.Width = 40

	return Model{
		cache:        cache,
		sampler:      sampler,
		styles:       DefaultStyles(),
		viewport:     viewport.New(80, 20),
		syncProgress: prog,
	}
}

// Init kicks off the lazy table load and the cosmetic sync animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTables, syncTick())
}

// loadTables pulls the session tables; on the first call this runs the
// generator and the unifier.
func (m Model) loadTables() tea.Msg {
	tables, err := m.cache.Tables()
	return tablesLoadedMsg{tables: tables, err: err}
}

func syncTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return syncTickMsg(t)
	})
}

// Update handles navigation keys, viewport scrolling, the sync animation
// and the table-load result.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.setSection((m.section + 1) % Section(len(sectionTitles)))
			return m, nil
		case "shift+tab", "left", "h":
			m.setSection((m.section + Section(len(sectionTitles)) - 1) % Section(len(sectionTitles)))
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7":
			m.setSection(Section(int(msg.String()[0] - '1')))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - chromeHeight
		m.ready = true
		m.refreshContent()
		return m, nil

	case tablesLoadedMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.loaded = true
			m.tables = msg.tables
			m.reports = reporting.NewService(msg.tables.Unified)
			m.trend = reporting.QualityTrend(m.sampler,
				time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), qualityTrendDays)
		}
		m.refreshContent()
		return m, nil

	case syncTickMsg:
		if m.syncPercent < 1.0 {
			m.syncPercent += 0.02
			if m.syncPercent > 1.0 {
				m.syncPercent = 1.0
			}
			if m.section == SectionSources {
				m.refreshContent()
			}
			return m, syncTick()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// chromeHeight is the screen space taken by the header, nav bar and footer.
const chromeHeight = 5

func (m *Model) setSection(section Section) {
	m.section = section
	m.viewport.GotoTop()
	m.refreshContent()
}

// refreshContent re-renders the active section into the viewport.
func (m *Model) refreshContent() {
	m.viewport.SetContent(m.sectionContent())
}

func (m *Model) sectionContent() string {
	if m.loadErr != nil {
		return m.styles.Bad.Render("failed to prepare demo data: " + m.loadErr.Error())
	}
	if !m.loaded {
		return m.styles.Muted.Render("Generating sample data...")
	}

	switch m.section {
	case SectionOverview:
		return renderOverview(m.styles)
	case SectionSources:
		syncBar := m.syncProgress.ViewAs(m.syncPercent)
		if m.syncPercent >= 1.0 {
			syncBar += "  " + m.styles.Good.Render("Sync completed!")
		}
		return renderSources(m.styles, m.tables, syncBar)
	case SectionBronze:
		return renderBronze(m.styles)
	case SectionSilver:
		return renderSilver(m.styles, m.tables.Unified)
	case SectionGold:
		return renderGold(m.styles, m.reports)
	case SectionMonitoring:
		return renderMonitoring(m.styles, m.trend)
	case SectionImpact:
		return renderImpact(m.styles)
	default:
		return ""
	}
}

// View renders the header, the section nav bar, the active section and the
// footer.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("AHUB: Analytics Hub Demo"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Tagline.Render("From Spreadsheets to AI: Transforming Retirement Technology"))
	sb.WriteString("\n")

	for i, title := range sectionTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if Section(i) == m.section {
			sb.WriteString(m.styles.NavActive.Render(label))
		} else {
			sb.WriteString(m.styles.NavInactive.Render(label))
		}
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	sb.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"session %s  •  tab/←→ switch section  •  1-7 jump  •  ↑↓ scroll  •  q quit",
		shortID(m.cache.ID().String()))))

	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
