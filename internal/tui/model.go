// Package tui provides the Bubble Tea game interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/colornova/internal/achievement"
	"github.com/verte-zerg/colornova/internal/game"
	"github.com/verte-zerg/colornova/internal/model"
)

type tickMsg struct {
	gen uint64
}

type clearFlashMsg struct {
	seq int
}

type clearBannerMsg struct {
	seq int
}

// UnlockMsg delivers achievements unlocked after a session was saved.
type UnlockMsg struct {
	Achievements []achievement.Achievement
}

// Model implements the Bubble Tea game UI.
type Model struct {
	ctrl     *game.Controller
	config   model.Config
	log      *logrus.Logger
	interval time.Duration

	width  int
	height int

	cursor int

	flashIndex int
	flashSeq   int
	banner     string
	bannerSeq  int

	result  game.Result
	ended   bool
	unlocks []achievement.Achievement
	errMsg  string

	pending []game.Event
}

// NewModel constructs a game TUI model around ctrl. The session starts with Start.
func NewModel(ctrl *game.Controller, cfg model.Config, log *logrus.Logger) *Model {
	m := &Model{
		ctrl:       ctrl,
		config:     cfg,
		log:        log,
		interval:   game.DefaultTickInterval,
		flashIndex: -1,
	}
	ctrl.Subscribe(func(ev game.Event) {
		m.pending = append(m.pending, ev)
	})
	return m
}

// Start begins a session with the configured mode.
func (m *Model) Start() error {
	if err := m.ctrl.Start(m.config.Mode, m.config.ShapeMode); err != nil {
		return err
	}
	m.drain()
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flashIndex = -1
		}
		return m, nil
	case clearBannerMsg:
		if msg.seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil
	case UnlockMsg:
		m.unlocks = append(m.unlocks, msg.Achievements...)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	key := msg.String()
	switch key {
	case "q", "esc":
		return tea.Quit
	case "r":
		return m.restart()
	}

	switch m.ctrl.State() {
	case game.StateActive:
		switch key {
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "enter", " ", "space":
			m.ctrl.Tap(m.cursor)
		case "p":
			m.ctrl.TogglePause()
		}
	case game.StatePaused:
		switch key {
		case "p", "enter":
			m.ctrl.TogglePause()
		case "s":
			m.ctrl.Shuffle()
		}
	case game.StateEnded:
		if key == "enter" {
			return m.restart()
		}
	}
	return m.drain()
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.ctrl.Generation() {
		return nil
	}
	m.ctrl.Tick()
	cmd := m.drain()
	switch m.ctrl.State() {
	case game.StateActive, game.StatePaused:
		return tea.Batch(cmd, m.scheduleTick())
	default:
		return cmd
	}
}

func (m *Model) restart() tea.Cmd {
	if err := m.Start(); err != nil {
		m.errMsg = err.Error()
		if m.log != nil {
			m.log.WithError(err).Warn("failed to restart session")
		}
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	if m.ctrl.State() != game.StateActive && m.ctrl.State() != game.StatePaused {
		return nil
	}
	gen := m.ctrl.Generation()
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// drain applies queued controller events to the view state.
func (m *Model) drain() tea.Cmd {
	events := m.pending
	m.pending = nil
	var cmds []tea.Cmd
	for _, ev := range events {
		switch ev.Kind {
		case game.EventSessionStarted:
			m.cursor = 0
			m.flashIndex = -1
			m.banner = ""
			m.ended = false
			m.unlocks = nil
			m.errMsg = ""
		case game.EventTapCorrect:
			m.banner = ""
		case game.EventTapWrong:
			m.flashIndex = ev.Index
			m.flashSeq++
			cmds = append(cmds, clearAfter(ev.DisplayFor, clearFlashMsg{seq: m.flashSeq}))
		case game.EventBonus:
			if m.banner != "" {
				m.banner += "  "
			}
			m.banner += ev.Label
			m.bannerSeq++
			cmds = append(cmds, clearAfter(ev.DisplayFor, clearBannerMsg{seq: m.bannerSeq}))
		case game.EventBoardChanged:
			m.flashIndex = -1
			if !m.ctrl.Board().Contains(m.cursor) {
				m.cursor = 0
			}
		case game.EventSessionEnded:
			m.result = ev.Result
			m.ended = true
			if m.log != nil {
				m.log.WithFields(logrus.Fields{
					"mode":  ev.Result.Mode,
					"score": ev.Result.Score,
					"rank":  ev.Result.Rank.Label,
				}).Info("session ended")
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) moveCursor(dRow, dCol int) {
	size := m.ctrl.Board().GridSize
	if size == 0 {
		return
	}
	row := m.cursor/size + dRow
	col := m.cursor%size + dCol
	if row < 0 || row >= size || col < 0 || col >= size {
		return
	}
	m.cursor = row*size + col
}

func clearAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
