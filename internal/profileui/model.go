// Package profileui provides the Bubble Tea profile rename form.
package profileui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/colornova/internal/model"
)

// MaxNameLength bounds display names.
const MaxNameLength = 24

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Renamer persists a new display name.
type Renamer interface {
	RenameProfile(ctx context.Context, userID, name string) error
}

// Model implements the rename form.
type Model struct {
	store   Renamer
	profile model.Profile
	input   textinput.Model
	errMsg  string
	saved   bool

	width  int
	height int
}

// NewModel constructs a rename form prefilled with the current name.
func NewModel(store Renamer, profile model.Profile) *Model {
	input := textinput.New()
	input.Prompt = "Name: "
	input.Placeholder = "Player"
	input.CharLimit = MaxNameLength
	input.Width = MaxNameLength + 1
	input.Cursor.SetMode(cursor.CursorBlink)
	input.SetValue(profile.Name)
	input.Focus()
	return &Model{store: store, profile: profile, input: input}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.save(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		titleStyle.Render("Rename profile"),
		"",
		m.input.View(),
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, "", helpStyle.Render("enter: save  esc: cancel"))
	content := modalStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Saved reports whether the new name was stored.
func (m *Model) Saved() bool {
	return m.saved
}

// Name returns the name currently in the form.
func (m *Model) Name() string {
	return strings.TrimSpace(m.input.Value())
}

func (m *Model) save() error {
	name, err := ValidateName(m.input.Value())
	if err != nil {
		return err
	}
	if err := m.store.RenameProfile(context.Background(), m.profile.ID, name); err != nil {
		return fmt.Errorf("failed to rename profile: %w", err)
	}
	m.profile.Name = name
	m.saved = true
	return nil
}

// ValidateName trims name and checks its length.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name must not be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("name must be at most %d characters", MaxNameLength)
	}
	return name, nil
}
