package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/colornova/internal/game"
	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/palette"
)

const (
	tileWidth = 7
	shapeBg   = "#1E1E2E"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD666")).Bold(true)
	wrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.ctrl.State() {
	case game.StateIdle:
		content = m.renderIdle()
	case game.StatePaused:
		content = m.renderPaused()
	case game.StateEnded:
		content = m.renderGameOver()
	default:
		content = m.renderPlaying()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderIdle() string {
	lines := []string{titleStyle.Render("ColorNova")}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, footerStyle.Render("r start · q quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderPlaying() string {
	snap := m.ctrl.Snapshot()
	parts := []string{
		m.renderHeader(snap),
		m.renderHUD(snap),
		"",
		m.renderTarget(snap),
		"",
		m.renderGrid(snap.Board, snap.ShapeMode),
		"",
		bannerStyle.Render(m.banner),
		footerStyle.Render("←↑↓→/hjkl move · enter tap · p pause · r restart · q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderPaused() string {
	snap := m.ctrl.Snapshot()
	body := strings.Join([]string{
		titleStyle.Render("Paused"),
		"",
		hudStyle.Render(fmt.Sprintf("Score %d · Streak %d", snap.Score, snap.Streak)),
		hudStyle.Render(fmt.Sprintf("Round %ds · Time %ds", snap.RoundTimeRemaining, snap.SessionTimeRemaining)),
		"",
		footerStyle.Render("p resume · s shuffle · r restart · q quit"),
	}, "\n")
	return cardStyle.Render(body)
}

func (m *Model) renderGameOver() string {
	res := m.result
	lines := []string{
		titleStyle.Render("Time's up!"),
		"",
		fmt.Sprintf("%s %s", res.Rank.Emoji, res.Rank.Label),
		hudStyle.Render(fmt.Sprintf("Score %d · Best streak %d", res.Score, res.BestStreak)),
		hudStyle.Render(fmt.Sprintf("%s · %s", res.Mode.Title(), shapeLabel(res.ShapeMode))),
	}
	if len(m.unlocks) > 0 {
		lines = append(lines, "", bannerStyle.Render("Achievements unlocked"))
		for _, a := range m.unlocks {
			lines = append(lines, fmt.Sprintf("%s %s", a.Emoji, a.Title))
		}
	}
	lines = append(lines, "", footerStyle.Render("r play again · q quit"))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHeader(snap game.SessionState) string {
	return titleStyle.Render(fmt.Sprintf("ColorNova · %s · %s · %s",
		snap.Mode.ID.Title(), snap.Mode.Subtitle, shapeLabel(snap.ShapeMode)))
}

func (m *Model) renderHUD(snap game.SessionState) string {
	return hudStyle.Render(fmt.Sprintf("Score %d   Streak %d   Round %ds   Time %ds",
		snap.Score, snap.Streak, snap.RoundTimeRemaining, snap.SessionTimeRemaining))
}

func (m *Model) renderTarget(snap game.SessionState) string {
	target := snap.Board.Target
	label := "Find"
	if snap.ShapeMode {
		label = fmt.Sprintf("Find the %s", target.Shape)
	}
	return hudStyle.Render(label+": ") + renderTile(target, snap.ShapeMode, false, false)
}

func (m *Model) renderGrid(board model.Board, shapeMode bool) string {
	if board.GridSize == 0 {
		return ""
	}
	rows := make([]string, 0, board.GridSize)
	for r := 0; r < board.GridSize; r++ {
		cells := make([]string, 0, board.GridSize)
		for c := 0; c < board.GridSize; c++ {
			i := r*board.GridSize + c
			if !board.Contains(i) {
				continue
			}
			cells = append(cells, renderTile(board.Tiles[i], shapeMode, i == m.cursor, i == m.flashIndex))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func renderTile(tile model.Tile, shapeMode, selected, wrong bool) string {
	hex := palette.Hex(tile.Color)
	style := lipgloss.NewStyle().Background(lipgloss.Color(hex))
	glyph := ""
	if shapeMode {
		style = lipgloss.NewStyle().
			Background(lipgloss.Color(shapeBg)).
			Foreground(lipgloss.Color(hex))
		glyph = tile.Shape.Glyph()
	}
	if wrong {
		style = style.Foreground(wrongStyle.GetForeground()).Bold(true)
		glyph = "✗"
	}
	cell := centerCell(glyph, tileWidth)
	if selected {
		cell = "[" + centerCell(glyph, tileWidth-2) + "]"
	}
	return style.Render(cell)
}

// centerCell pads s to width terminal cells.
func centerCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func shapeLabel(shapeMode bool) string {
	if shapeMode {
		return "Shape Mode"
	}
	return "Color Mode"
}
