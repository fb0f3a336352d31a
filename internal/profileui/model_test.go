package profileui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/colornova/internal/model"
)

type fakeRenamer struct {
	userID string
	name   string
	err    error
}

func (f *fakeRenamer) RenameProfile(ctx context.Context, userID, name string) error {
	if f.err != nil {
		return f.err
	}
	f.userID = userID
	f.name = name
	return nil
}

func TestRenameSaves(t *testing.T) {
	st := &fakeRenamer{}
	m := NewModel(st, model.Profile{ID: "u1", Name: "Player"})
	for i := 0; i < len("Player"); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Nova")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit after save")
	}
	if !m.Saved() || st.userID != "u1" || st.name != "Nova" {
		t.Fatalf("unexpected save state: saved=%v user=%q name=%q", m.Saved(), st.userID, st.name)
	}
}

func TestRenameRejectsEmpty(t *testing.T) {
	st := &fakeRenamer{}
	m := NewModel(st, model.Profile{ID: "u1", Name: "  "})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected form to stay open")
	}
	if m.Saved() || !strings.Contains(m.View(), "must not be empty") {
		t.Fatalf("expected validation error:\n%s", m.View())
	}
}

func TestRenameStoreError(t *testing.T) {
	st := &fakeRenamer{err: errors.New("read-only")}
	m := NewModel(st, model.Profile{ID: "u1", Name: "Nova"})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Saved() || !strings.Contains(m.errMsg, "read-only") {
		t.Fatalf("expected store error, got %q", m.errMsg)
	}
}

func TestEscCancels(t *testing.T) {
	m := NewModel(&fakeRenamer{}, model.Profile{ID: "u1", Name: "Nova"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || m.Saved() {
		t.Fatalf("expected cancel without save")
	}
}

func TestValidateName(t *testing.T) {
	if got, err := ValidateName("  Vega "); err != nil || got != "Vega" {
		t.Fatalf("unexpected result %q %v", got, err)
	}
	if _, err := ValidateName(strings.Repeat("x", MaxNameLength+1)); err == nil {
		t.Fatalf("expected length error")
	}
}
