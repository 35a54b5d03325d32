package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

func assertVec(t *testing.T, want, got geometry.Vector3) {
	t.Helper()
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTruncate(t *testing.T) {
	assertVec(t, geometry.NewVector(0.6, 0.8, 0), Truncate(geometry.NewVector(3, 4, 0)))
	assertVec(t, geometry.NewVector(0.5, 0, 0), Truncate(geometry.NewVector(0.5, 0, 0)))
	assertVec(t, geometry.Zero, Truncate(geometry.Zero))

	// truncating twice changes nothing
	v := Truncate(geometry.NewVector(-7, 2, 11))
	if Truncate(v) != v {
		t.Errorf("Truncate is not idempotent: %v became %v", v, Truncate(v))
	}
}

func TestAdjust(t *testing.T) {
	assertVec(t, geometry.NewVector(0.5, 0, 0), Adjust(geometry.NewVector(2, 0, 0)))
	assertVec(t, geometry.NewVector(0, -0.25, 0), Adjust(geometry.NewVector(0, -4, 0)))

	// near things weigh more than far ones
	near := Adjust(geometry.NewVector(1, 1, 0)).Len()
	far := Adjust(geometry.NewVector(10, 10, 0)).Len()
	if near <= far {
		t.Errorf("expected falloff with distance, got near=%f far=%f", near, far)
	}

	if got := Adjust(geometry.Zero); got != geometry.Zero {
		t.Errorf("Adjust(0) should be zero, got %v", got)
	}
	if got := Adjust(geometry.NewVector(math.SmallestNonzeroFloat64, 0, 0)); !got.IsFinite() {
		t.Errorf("Adjust should never return non-finite values, got %v", got)
	}
}

func TestSeparation(t *testing.T) {
	if got := Separation(nil, 1); got != geometry.Zero {
		t.Errorf("no neighbors should give zero, got %v", got)
	}

	// neighbor at +X pushes toward -X
	nb := []Neighbor{{Index: 1, Offset: geometry.NewVector(1, 0, 0)}}
	assertVec(t, geometry.NewVector(-1, 0, 0), Separation(nb, 1))
	assertVec(t, geometry.NewVector(-0.5, 0, 0), Separation(nb, 0.5))

	// far neighbors push less than the unit cap
	nb = []Neighbor{{Index: 1, Offset: geometry.NewVector(0, 4, 0)}}
	assertVec(t, geometry.NewVector(0, -0.25, 0), Separation(nb, 1))

	// symmetric neighbors cancel out
	nb = []Neighbor{
		{Index: 1, Offset: geometry.NewVector(3, 0, 0)},
		{Index: 2, Offset: geometry.NewVector(-3, 0, 0)},
	}
	assertVec(t, geometry.Zero, Separation(nb, 1))
}

func TestCohesion(t *testing.T) {
	nb := []Neighbor{
		{Index: 1, Offset: geometry.NewVector(2, 0, 0)},
		{Index: 2, Offset: geometry.NewVector(4, 0, 0)},
	}
	tests := []struct {
		rule CohesionRule
		want geometry.Vector3
	}{
		{CohesionAverage, geometry.NewVector(0.8/3, 0, 0)},
		{CohesionSum, geometry.NewVector(0.8*0.75, 0, 0)},
		{CohesionCentroid, geometry.NewVector(0.8, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			assertVec(t, tt.want, Cohesion(tt.rule, nb, 0.8))
			if got := Cohesion(tt.rule, nil, 0.8); got != geometry.Zero {
				t.Errorf("no neighbors should give zero, got %v", got)
			}
		})
	}
}

func TestAlignment(t *testing.T) {
	snapshot := []Agent{
		{Index: 0, Velocity: geometry.NewVector(9, 9, 9)},
		{Index: 1, Velocity: geometry.NewVector(0.4, 0, 0)},
		{Index: 2, Velocity: geometry.NewVector(0, 0.2, 0)},
	}
	nb := []Neighbor{{Index: 1}, {Index: 2}}
	assertVec(t, geometry.NewVector(0.02, 0.01, 0), Alignment(nb, snapshot, 0.1))

	// fast neighbors are capped at unit length before scaling
	snapshot[1].Velocity = geometry.NewVector(30, 0, 0)
	snapshot[2].Velocity = geometry.NewVector(10, 0, 0)
	assertVec(t, geometry.NewVector(0.1, 0, 0), Alignment(nb, snapshot, 0.1))

	if got := Alignment(nil, snapshot, 0.1); got != geometry.Zero {
		t.Errorf("no neighbors should give zero, got %v", got)
	}
}

func TestCenterPull(t *testing.T) {
	pos := geometry.NewVector(10, 0, 0)
	assertVec(t, geometry.NewVector(-0.1, 0, 0), CenterPull(pos, true, 1))
	assertVec(t, geometry.NewVector(-0.05, 0, 0), CenterPull(pos, true, 0.5))
	if got := CenterPull(pos, false, 1); got != geometry.Zero {
		t.Errorf("disabled center pull should be zero, got %v", got)
	}
	if got := CenterPull(geometry.Zero, true, 1); got != geometry.Zero {
		t.Errorf("an agent at the origin feels no pull, got %v", got)
	}
	// close to the origin the pull is capped
	assertVec(t, geometry.NewVector(0, 0, 1), CenterPull(geometry.NewVector(0, 0, -0.01), true, 1))
}
