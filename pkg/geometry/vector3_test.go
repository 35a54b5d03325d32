package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2, 3)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("NewVector(1, 2, 3) = %v; want (1, 2, 3)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector3{1.234, 5.678, -0.001}
	want := "(1.23, 5.68, -0.00)"
	if got := v.String(); got != want {
		t.Errorf("Vector3.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector3{1, 2, 3}
	v2 := Vector3{4, 5, 6}

	t.Run("Add", func(t *testing.T) {
		want := Vector3{5, 7, 9}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector3{-3, -3, -3}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector3{2, 4, 6}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Neg", func(t *testing.T) {
		want := Vector3{-1, -2, -3}
		if got := v1.Neg(); !got.Eq(want) {
			t.Errorf("%v.Neg() = %v; want %v", v1, got, want)
		}
	})
}

func TestVector_Products(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	z := Vector3{0, 0, 1}

	t.Run("Dot", func(t *testing.T) {
		if got := x.Dot(y); got != 0 {
			t.Errorf("Dot orthogonal = %v; want 0", got)
		}
		if got := (Vector3{1, 2, 3}).Dot(Vector3{4, 5, 6}); got != 32 {
			t.Errorf("Dot = %v; want 32", got)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		if got := x.Cross(y); !got.Eq(z) {
			t.Errorf("X×Y = %v; want %v", got, z)
		}
		if got := y.Cross(x); !got.Eq(z.Neg()) {
			t.Errorf("Y×X = %v; want %v", got, z.Neg())
		}
		v := Vector3{1, 2, 3}
		if got := v.Cross(v); !got.Eq(Zero) {
			t.Errorf("Cross self = %v; want 0", got)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector3{2, 3, 6} // 2-3-6-7 quadruple

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 7 {
			t.Errorf("Len = %v; want 7", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 49 {
			t.Errorf("LenSqr = %v; want 49", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector3{2.0 / 7, 3.0 / 7, 6.0 / 7}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		if got := Zero.Normalize(); !got.IsZero() {
			t.Errorf("Normalize(0,0,0) = %v; want zero", got)
		}
	})
}

func TestVector_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want bool
	}{
		{"finite", Vector3{1, -2, 3}, true},
		{"NaN", Vector3{math.NaN(), 0, 0}, false},
		{"Inf", Vector3{0, 0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("%v.IsFinite() = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector_Axis(t *testing.T) {
	v := Vector3{1, 2, 3}
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d) = %v; want %v", axis, got, want)
		}
	}
	if got := v.WithAxis(AxisY, 9); !got.Eq(Vector3{1, 9, 3}) {
		t.Errorf("WithAxis(Y, 9) = %v", got)
	}
	if v.Y != 2 {
		t.Errorf("WithAxis mutated the receiver: %v", v)
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector3{1, 2, 3}

	if !v.Eq(Vector3{1, 2, 3}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector3{1 + Epsilon/2, 2 - Epsilon/2, 3}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	if v.Eq(Vector3{1, 2, 3.1}) {
		t.Error("Eq mismatch failed")
	}
}
