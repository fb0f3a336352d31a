// Package generator builds game boards.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/palette"
)

// Generator produces randomized boards.
type Generator struct {
	rnd     *rand.Rand
	palette *palette.Generator
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	rnd := rand.New(src)
	return &Generator{rnd: rnd, palette: palette.New(rnd)}
}

// Build lays out gridSize² distinct colors and picks one target tile.
// In color-only mode every tile is a circle.
func (g *Generator) Build(mode model.GameMode, shapeMode bool) model.Board {
	count := mode.GridCount()
	colors := g.palette.Generate(count)
	tiles := make([]model.Tile, count)
	for i, c := range colors {
		shape := model.ShapeCircle
		if shapeMode {
			shape = model.Shapes[g.rnd.Intn(len(model.Shapes))]
		}
		tiles[i] = model.Tile{Color: c, Shape: shape}
	}
	target := g.rnd.Intn(count)
	return model.Board{
		GridSize:    mode.GridSize,
		Tiles:       tiles,
		TargetIndex: target,
		Target:      tiles[target],
	}
}
