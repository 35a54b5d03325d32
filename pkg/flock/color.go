package flock

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// IsolatedColor is the color of an agent that sees nobody (light slate gray).
const IsolatedColor = "#778899"

// DefaultNeighborCap is the neighbor count that maps to a hue of 240 (blue).
const DefaultNeighborCap = 8

// NeighborColor maps a neighbor count to a hex color. The hue runs from red toward blue
// (240) as the count approaches neighborCap; counts above the cap keep rotating the hue.
func NeighborColor(neighbors, neighborCap int) string {
	if neighbors <= 0 {
		return IsolatedColor
	}
	if neighborCap <= 0 {
		neighborCap = DefaultNeighborCap
	}
	hue := math.Mod(240.0*float64(neighbors)/float64(neighborCap), 360)
	return colorful.Hsv(hue, 0.5, 1.0).Hex()
}
