package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq and Normalize.
const (
	Epsilon = 1e-9
)

// Axis indices, usable with Vector3.Axis and Vector3.WithAxis.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// Vector3 represents a 3D vector or point in cartesian space.
// Fields are public because they are plain data: v := Vector3{X: 1, Y: 2, Z: 3}
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Zero is the zero vector.
var Zero = Vector3{}

// NewVector creates a new Vector3.
func NewVector(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// String formats v with two decimals per component.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// ---------------------------------------------------------------------

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns v scaled by scalar.
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Neg returns the opposite vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// ---------------------------------------------------------------------
// Vector3 Products
// ---------------------------------------------------------------------

// Dot returns the scalar product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product v × other (right-handed).
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr returns the squared length; prefer it to Len for comparisons.
func (v Vector3) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the Euclidean length.
func (v Vector3) Len() float64 {
	return math.Sqrt(v.LenSqr())
}

// Normalize returns the unit vector along v, or Zero when v is shorter than Epsilon.
func (v Vector3) Normalize() Vector3 {
	l := v.Len()
	if l < Epsilon {
		return Zero
	}
	return v.Mul(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------
// Axis access
// ---------------------------------------------------------------------

// Axis returns the component for AxisX, AxisY or AxisZ.
func (v Vector3) Axis(axis int) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic(fmt.Sprintf("geometry: invalid axis %d", axis))
}

// WithAxis returns a copy of v with the given component replaced.
func (v Vector3) WithAxis(axis int, value float64) Vector3 {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		panic(fmt.Sprintf("geometry: invalid axis %d", axis))
	}
	return v
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq reports whether every component differs by at most Epsilon.
func (v Vector3) Eq(other Vector3) bool {
	return math.Abs(v.X-other.X) <= Epsilon &&
		math.Abs(v.Y-other.Y) <= Epsilon &&
		math.Abs(v.Z-other.Z) <= Epsilon
}
