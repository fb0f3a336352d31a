package generator

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/colornova/internal/model"
)

func TestBuildColorOnly(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))
	mode, _ := model.Mode(model.ModeEasy)
	board := g.Build(mode, false)
	if board.Len() != 9 {
		t.Fatalf("expected 9 tiles, got %d", board.Len())
	}
	if board.GridSize != 3 {
		t.Fatalf("expected grid size 3, got %d", board.GridSize)
	}
	if !board.Contains(board.TargetIndex) {
		t.Fatalf("target index %d out of range", board.TargetIndex)
	}
	for i, tile := range board.Tiles {
		if tile.Shape != model.ShapeCircle {
			t.Fatalf("tile %d: expected circle in color-only mode, got %s", i, tile.Shape)
		}
	}
	if board.Target != board.Tiles[board.TargetIndex] {
		t.Fatalf("target does not mirror target tile")
	}
}

func TestBuildShapeModeUsesShapes(t *testing.T) {
	g := NewWithSource(rand.NewSource(3))
	mode, _ := model.Mode(model.ModeHard)
	seen := map[model.ShapeKind]bool{}
	for i := 0; i < 10; i++ {
		board := g.Build(mode, true)
		if board.Len() != 49 {
			t.Fatalf("expected 49 tiles, got %d", board.Len())
		}
		for _, tile := range board.Tiles {
			seen[tile.Shape] = true
		}
		if board.Target != board.Tiles[board.TargetIndex] {
			t.Fatalf("target does not mirror target tile")
		}
	}
	if len(seen) != len(model.Shapes) {
		t.Fatalf("expected every shape to appear across boards, saw %v", seen)
	}
}

func TestBuildDeterministic(t *testing.T) {
	mode, _ := model.Mode(model.ModeModerate)
	a := NewWithSource(rand.NewSource(99)).Build(mode, true)
	b := NewWithSource(rand.NewSource(99)).Build(mode, true)
	if a.TargetIndex != b.TargetIndex {
		t.Fatalf("expected identical targets, got %d and %d", a.TargetIndex, b.TargetIndex)
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between identical seeds", i)
		}
	}
}
