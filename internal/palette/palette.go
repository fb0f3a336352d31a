// Package palette synthesizes perceptually distinct tile colors.
package palette

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/colornova/internal/model"
)

// GoldenRatioConjugate is the hue step between consecutive colors.
const GoldenRatioConjugate = 0.618033988749895

// Generator produces shuffled color sequences from an injected random source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator drawing from rnd.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate returns count distinct colors starting from a random hue, in shuffled order.
func (g *Generator) Generate(count int) []model.ColorSpec {
	return g.GenerateFrom(count, g.rnd.Float64())
}

// GenerateFrom returns count distinct colors starting from seedHue, in shuffled order.
func (g *Generator) GenerateFrom(count int, seedHue float64) []model.ColorSpec {
	colors := Sequence(count, seedHue)
	g.rnd.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
	return colors
}

// Sequence returns count colors in generation order. The hue advances by the
// golden ratio conjugate before each color, so the first hue is seedHue+step.
func Sequence(count int, seedHue float64) []model.ColorSpec {
	if count <= 0 {
		return nil
	}
	hue := wrap(seedHue)
	colors := make([]model.ColorSpec, 0, count)
	for i := 0; i < count; i++ {
		hue = wrap(hue + GoldenRatioConjugate)
		colors = append(colors, model.ColorSpec{
			Hue:        hue,
			Saturation: model.TileSaturation,
			Brightness: model.TileBrightness,
		})
	}
	return colors
}

// Hex converts a color to a #rrggbb display string.
func Hex(c model.ColorSpec) string {
	return colorful.Hsv(c.Hue*360, c.Saturation, c.Brightness).Clamped().Hex()
}

func wrap(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}
