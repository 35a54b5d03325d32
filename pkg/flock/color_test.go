package flock

import "testing"

func TestNeighborColor(t *testing.T) {
	tests := []struct {
		neighbors, neighborCap int
		want                   string
	}{
		{0, 8, IsolatedColor},
		{-1, 8, IsolatedColor},
		{4, 8, "#80ff80"},  // hue 120
		{8, 8, "#8080ff"},  // hue 240 at the cap
		{12, 8, "#ff8080"}, // hue wraps to 0
		{8, 0, "#8080ff"},  // default cap
	}
	for _, tt := range tests {
		if got := NeighborColor(tt.neighbors, tt.neighborCap); got != tt.want {
			t.Errorf("NeighborColor(%d, %d) = %s, want %s", tt.neighbors, tt.neighborCap, got, tt.want)
		}
	}
}
