// Package game implements the match session engine: validation, scoring,
// countdown timers and the session state machine.
package game

import "github.com/verte-zerg/colornova/internal/model"

// IsMatch reports whether tile satisfies target. In shape mode both color and
// shape must agree; otherwise shape is ignored.
func IsMatch(tile, target model.Tile, shapeMode bool) bool {
	if !tile.Color.Equal(target.Color) {
		return false
	}
	if shapeMode {
		return tile.Shape == target.Shape
	}
	return true
}
