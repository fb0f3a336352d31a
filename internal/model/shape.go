package model

// ShapeKind is the outline drawn for a tile.
type ShapeKind int

// Shape kinds.
const (
	ShapeCircle ShapeKind = iota
	ShapeDiamond
	ShapeTriangle
	ShapeStar
)

// Shapes lists every shape kind.
var Shapes = []ShapeKind{ShapeCircle, ShapeDiamond, ShapeTriangle, ShapeStar}

func (s ShapeKind) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeDiamond:
		return "diamond"
	case ShapeTriangle:
		return "triangle"
	case ShapeStar:
		return "star"
	default:
		return "unknown"
	}
}

// Glyph returns the terminal symbol for the shape.
func (s ShapeKind) Glyph() string {
	switch s {
	case ShapeCircle:
		return "●"
	case ShapeDiamond:
		return "◆"
	case ShapeTriangle:
		return "▲"
	case ShapeStar:
		return "★"
	default:
		return "?"
	}
}
