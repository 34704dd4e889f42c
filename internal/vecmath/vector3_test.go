package vecmath

import (
	"errors"
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)

	if got := a.Add(b); got != New(5, 7, 9) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := New(5, 7, 9).Sub(a); got != b {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(3); got != New(3, 6, 9) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := New(9, 6, 3).Div(3); got != New(3, 2, 1) {
		t.Errorf("Div failed: got %v", got)
	}
	if got := a.Neg(); got != New(-1, -2, -3) {
		t.Errorf("Neg failed: got %v", got)
	}
}

func TestAssignVariants(t *testing.T) {
	v := New(1, 2, 3)
	v.AddAssign(New(1, 1, 1))
	if v != New(2, 3, 4) {
		t.Errorf("AddAssign failed: got %v", v)
	}
	v.SubAssign(New(2, 2, 2))
	if v != New(0, 1, 2) {
		t.Errorf("SubAssign failed: got %v", v)
	}
	v.ScaleAssign(4)
	if v != New(0, 4, 8) {
		t.Errorf("ScaleAssign failed: got %v", v)
	}
	v.DivAssign(2)
	if v != New(0, 2, 4) {
		t.Errorf("DivAssign failed: got %v", v)
	}
}

func TestAdditionGroup(t *testing.T) {
	vectors := []Vector3{
		New(1, 2, 3),
		New(-4, 0.5, 8),
		New(0.25, -0.75, 16),
		Zero,
	}

	for _, a := range vectors {
		for _, b := range vectors {
			if a.Add(b) != b.Add(a) {
				t.Errorf("addition not commutative for %v, %v", a, b)
			}
			for _, c := range vectors {
				if a.Add(b).Add(c) != a.Add(b.Add(c)) {
					t.Errorf("addition not associative for %v, %v, %v", a, b, c)
				}
			}
		}
		if got := a.Add(a.Scale(-1)); got != Zero {
			t.Errorf("a + (-1*a) = %v, want zero", got)
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Div", func() { New(1, 2, 3).Div(0) }},
		{"DivAssign", func() {
			v := New(1, 2, 3)
			v.DivAssign(0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrDivideByZero) {
					t.Errorf("expected ErrDivideByZero panic, got %v", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestDivNearZeroDoesNotPanic(t *testing.T) {
	got := New(1, 0, 0).Div(1e-30)
	if got.X <= 0 {
		t.Errorf("expected large positive X, got %v", got.X)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		v        Vector3
		expected float32
	}{
		{New(0, 3, 4), 5},
		{New(1, 0, 0), 1},
		{Zero, 0},
		{New(-2, -3, -6), 7},
	}

	for _, tt := range tests {
		got := tt.v.Magnitude()
		if got < 0 {
			t.Errorf("Magnitude(%v) negative: %v", tt.v, got)
		}
		if abs32(got-tt.expected) > 1e-5 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	norm := New(0, 3, 4).Normalize()
	if !ApproxEqual(norm, New(0, 0.6, 0.8), 1e-5) {
		t.Errorf("Normalize failed: got %v", norm)
	}

	vectors := []Vector3{
		New(1, 1, 1),
		New(-7.5, 0.001, 3),
		New(1e3, -2e3, 5e2),
		New(1e-3, 2e-3, -1e-3),
	}
	for _, v := range vectors {
		if m := v.Normalize().Magnitude(); abs32(m-1) > 1e-5 {
			t.Errorf("|Normalize(%v)| = %v, want 1", v, m)
		}
	}
}

func TestNormalizeZeroIsNaN(t *testing.T) {
	n := Zero.Normalize()
	if !math.IsNaN(float64(n.X)) || !math.IsNaN(float64(n.Y)) || !math.IsNaN(float64(n.Z)) {
		t.Errorf("expected NaN components, got %v", n)
	}
	if n.IsFinite() {
		t.Error("IsFinite should report false for NaN vector")
	}
}

func TestDistanceTo(t *testing.T) {
	d := New(1, 2, 3).DistanceTo(New(1, 3, 4))
	if abs32(d-1.41421356) > 1e-5 {
		t.Errorf("DistanceTo = %v, want sqrt(2)", d)
	}
}

func TestDot(t *testing.T) {
	if got := New(1, 3, -5).Dot(New(4, -2, -1)); got != 3 {
		t.Errorf("Dot = %v, want 3", got)
	}
}

func TestCross(t *testing.T) {
	a := New(2, 3, 4)
	b := New(5, 6, 7)

	c := a.Cross(b)
	if c != New(-3, 6, -3) {
		t.Errorf("Cross = %v, want (-3, 6, -3)", c)
	}
	if c.Dot(a) != 0 || c.Dot(b) != 0 {
		t.Errorf("cross product not orthogonal: %v·a=%v %v·b=%v", c, c.Dot(a), c, c.Dot(b))
	}

	if New(1, 0, 0).Cross(New(0, 1, 0)) != New(0, 0, 1) {
		t.Error("x × y should be z (right-handed)")
	}
}

func TestCrossOrthogonality(t *testing.T) {
	pairs := [][2]Vector3{
		{New(1.5, -2.25, 0.5), New(0.75, 3, -1.25)},
		{New(10, 20, 30), New(-3, 7, 1)},
		{New(0.1, 0.2, 0.3), New(0.3, 0.2, 0.1)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		c := a.Cross(b)
		tol := 1e-5 * a.Magnitude() * b.Magnitude() * (a.Magnitude() + b.Magnitude())
		if abs32(c.Dot(a)) > tol || abs32(c.Dot(b)) > tol {
			t.Errorf("cross(%v, %v) = %v not orthogonal", a, b, c)
		}
	}
}
