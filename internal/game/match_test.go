package game

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/colornova/internal/generator"
	"github.com/verte-zerg/colornova/internal/model"
)

func TestIsMatchColorOnlyIgnoresShape(t *testing.T) {
	color := model.ColorSpec{Hue: 0.2, Saturation: model.TileSaturation, Brightness: model.TileBrightness}
	target := model.Tile{Color: color, Shape: model.ShapeCircle}
	if !IsMatch(model.Tile{Color: color, Shape: model.ShapeStar}, target, false) {
		t.Fatalf("expected color-only match to ignore shape")
	}
}

func TestIsMatchShapeModeIsConjunctive(t *testing.T) {
	color := model.ColorSpec{Hue: 0.2, Saturation: model.TileSaturation, Brightness: model.TileBrightness}
	other := model.ColorSpec{Hue: 0.7, Saturation: model.TileSaturation, Brightness: model.TileBrightness}
	target := model.Tile{Color: color, Shape: model.ShapeDiamond}

	tests := []struct {
		name string
		tile model.Tile
		want bool
	}{
		{"both", model.Tile{Color: color, Shape: model.ShapeDiamond}, true},
		{"color only", model.Tile{Color: color, Shape: model.ShapeStar}, false},
		{"shape only", model.Tile{Color: other, Shape: model.ShapeDiamond}, false},
		{"neither", model.Tile{Color: other, Shape: model.ShapeStar}, false},
	}
	for _, tt := range tests {
		if got := IsMatch(tt.tile, target, true); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestGeneratedBoardsHaveSingleMatch(t *testing.T) {
	for _, id := range []model.ModeID{model.ModeEasy, model.ModeModerate, model.ModeHard, model.ModeBonus} {
		mode, _ := model.Mode(id)
		for _, shapeMode := range []bool{false, true} {
			g := generator.NewWithSource(rand.NewSource(int64(len(id))))
			for round := 0; round < 50; round++ {
				board := g.Build(mode, shapeMode)
				matches := 0
				for i, tile := range board.Tiles {
					if IsMatch(tile, board.Target, shapeMode) {
						matches++
						if i != board.TargetIndex {
							t.Fatalf("%s shape=%v: unexpected match at %d (target %d)", id, shapeMode, i, board.TargetIndex)
						}
					}
				}
				if matches != 1 {
					t.Fatalf("%s shape=%v: expected exactly one match, got %d", id, shapeMode, matches)
				}
			}
		}
	}
}
