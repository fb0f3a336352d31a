// Package leaderboardui provides the Bubble Tea leaderboard interface.
package leaderboardui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/stats"
)

const (
	tabPlayers = iota
	tabGames
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Source loads the score-ordered window of entries.
type Source interface {
	ListTopScores(ctx context.Context, window int) ([]model.ScoreEntry, error)
}

var modeCycle = []*model.ModeID{nil, modePtr(model.ModeEasy), modePtr(model.ModeModerate), modePtr(model.ModeHard), modePtr(model.ModeBonus)}

var shapeCycle = []*bool{nil, boolPtr(false), boolPtr(true)}

// Model implements the Bubble Tea leaderboard UI.
type Model struct {
	source Source
	window int

	modeIdx  int
	shapeIdx int

	entries []model.ScoreEntry
	errMsg  string

	tabs      []string
	activeTab int
	table     table.Model

	width  int
	height int
}

// NewModel constructs a leaderboard UI over source starting from filter.
func NewModel(source Source, filter model.LeaderboardFilter, window int) *Model {
	if window <= 0 {
		window = stats.DefaultWindow
	}
	m := &Model{
		source: source,
		window: window,
		tabs:   []string{"Players", "Top Games"},
		table:  newTable(),
	}
	m.modeIdx = indexOfMode(filter.Mode)
	m.shapeIdx = indexOfShape(filter.ShapeMode)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l", "tab":
			m.moveTab(1)
			return m, nil
		case "m":
			m.modeIdx = (m.modeIdx + 1) % len(modeCycle)
			m.applyRows()
			return m, nil
		case "s":
			m.shapeIdx = (m.shapeIdx + 1) % len(shapeCycle)
			m.applyRows()
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderTabs() + "\n" + m.renderFilterSummary()
	footer := m.renderFooter()
	body := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := maxInt(1, m.height-headerHeight-footerHeight)
	return strings.Join([]string{
		fitLines(header, m.width, headerHeight),
		fitLines(body, m.width, bodyHeight),
		fitLines(footer, m.width, footerHeight),
	}, "\n")
}

// Filter returns the filter currently applied.
func (m *Model) Filter() model.LeaderboardFilter {
	return model.LeaderboardFilter{Mode: modeCycle[m.modeIdx], ShapeMode: shapeCycle[m.shapeIdx]}
}

func (m *Model) refresh() {
	entries, err := m.source.ListTopScores(context.Background(), m.window)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load scores: %v", err)
		m.entries = nil
		m.applyRows()
		return
	}
	m.errMsg = ""
	m.entries = entries
	m.applyRows()
}

func (m *Model) applyRows() {
	filter := m.Filter()
	var cols []table.Column
	var rows []table.Row
	if m.activeTab == tabGames {
		cols, rows = gameTableData(stats.TopEntries(m.entries, filter))
	} else {
		cols, rows = playerTableData(stats.Aggregate(m.entries, filter))
	}
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.applyRows()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, m.height-6))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFilterSummary() string {
	mode := "all"
	if id := modeCycle[m.modeIdx]; id != nil {
		mode = string(*id)
	}
	shape := "all"
	if s := shapeCycle[m.shapeIdx]; s != nil {
		shape = stats.ShapeLabel(*s)
	}
	summary := fmt.Sprintf("Filters: mode=%s  variant=%s  window=%d", mode, shape, m.window)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Mode: m  Variant: s  Refresh: r  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody() string {
	if len(m.table.Rows()) == 0 {
		return "No scores yet."
	}
	return tableMutedStyle.Render(m.table.View())
}

func newTable() table.Model {
	cols, _ := playerTableData(nil)
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(stats.LeaderboardSize+1),
	)
	t.SetStyles(tableStyles())
	return t
}

func playerTableData(aggs []model.AggregatedScore) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 18},
		{Title: "Total", Width: 7},
		{Title: "Mode", Width: 9},
		{Title: "Variant", Width: 8},
	}
	cells := stats.LeaderboardRows(aggs)
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, table.Row(c))
	}
	return columns, rows
}

func gameTableData(entries []model.ScoreEntry) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 18},
		{Title: "Score", Width: 7},
		{Title: "Mode", Width: 9},
		{Title: "Variant", Width: 8},
		{Title: "Played", Width: 16},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			stats.PlaceLabel(i + 1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Mode.Title(),
			stats.ShapeLabel(e.ShapeMode),
			e.Timestamp.Local().Format("2006-01-02 15:04"),
		})
	}
	return columns, rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func indexOfMode(id *model.ModeID) int {
	if id == nil {
		return 0
	}
	for i, m := range modeCycle {
		if m != nil && *m == *id {
			return i
		}
	}
	return 0
}

func indexOfShape(s *bool) int {
	if s == nil {
		return 0
	}
	if *s {
		return 2
	}
	return 1
}

func modePtr(id model.ModeID) *model.ModeID {
	return &id
}

func boolPtr(b bool) *bool {
	return &b
}
