package vecmath

import (
	"errors"
	"math"
)

// ErrDivideByZero is the panic value raised by Div and DivAssign.
var ErrDivideByZero = errors.New("vecmath: attempted to divide by zero")

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z float32
}

// Zero is the origin.
var Zero = Vector3{}

func New(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(k float32) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Div divides every component by k. A zero divisor is a caller bug, so it
// panics with ErrDivideByZero instead of producing infinities.
func (v Vector3) Div(k float32) Vector3 {
	if k == 0 {
		panic(ErrDivideByZero)
	}
	return Vector3{v.X / k, v.Y / k, v.Z / k}
}

func (v *Vector3) AddAssign(o Vector3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

func (v *Vector3) SubAssign(o Vector3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

func (v *Vector3) ScaleAssign(k float32) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// DivAssign is the in-place form of Div and panics on the same condition.
func (v *Vector3) DivAssign(k float32) {
	if k == 0 {
		panic(ErrDivideByZero)
	}
	v.X /= k
	v.Y /= k
	v.Z /= k
}

// Magnitude returns the Euclidean norm.
func (v Vector3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns v scaled to unit length. The zero vector has no
// direction; its components come back as NaN.
func (v Vector3) Normalize() Vector3 {
	mag := v.Magnitude()
	return Vector3{v.X / mag, v.Y / mag, v.Z / mag}
}

func (v Vector3) DistanceTo(o Vector3) float32 { return v.Sub(o).Magnitude() }

func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual compares component-wise with an absolute tolerance.
func ApproxEqual(a, b Vector3, eps float32) bool {
	return abs32(a.X-b.X) <= eps && abs32(a.Y-b.Y) <= eps && abs32(a.Z-b.Z) <= eps
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
