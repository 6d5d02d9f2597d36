// Package fpnum implements the fixed-point numbers the physics world is
// stepped with. Integer-only arithmetic keeps trajectories bit-identical
// across machines.
package fpnum

import "fmt"

// FracBits is the number of fractional bits.
const FracBits = 16

// Scale is the raw value of 1.0.
const Scale = 1 << FracBits

// Number is a signed fixed-point value with FracBits fractional bits.
type Number int64

// One is the fixed simulation time unit.
const One Number = Scale

// Zero is 0.0.
const Zero Number = 0

// FromInt converts an integer to fixed-point.
func FromInt(n int) Number {
	return Number(int64(n) << FracBits)
}

// FromRatio returns num/den without going through floating point.
func FromRatio(num, den int) Number {
	if den == 0 {
		return 0
	}
	return Number(int64(num) * Scale / int64(den))
}

// Raw exposes the underlying integer, for hashing and serialization.
func (f Number) Raw() int64 {
	return int64(f)
}

// Int truncates toward negative infinity.
func (f Number) Int() int {
	return int(int64(f) >> FracBits)
}

// Round converts to the nearest integer, halves away from zero.
func (f Number) Round() int {
	if f >= 0 {
		return int((int64(f) + Scale/2) >> FracBits)
	}
	return -int((int64(-f) + Scale/2) >> FracBits)
}

// Add adds two fixed-point values.
func (f Number) Add(other Number) Number {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Number) Sub(other Number) Number {
	return f - other
}

// Mul multiplies two fixed-point values.
func (f Number) Mul(other Number) Number {
	return Number((int64(f) * int64(other)) >> FracBits)
}

// MulInt multiplies by an integer.
func (f Number) MulInt(n int) Number {
	return Number(int64(f) * int64(n))
}

// Div divides by another fixed-point value. Division by zero yields zero.
func (f Number) Div(other Number) Number {
	if other == 0 {
		return 0
	}
	return Number((int64(f) << FracBits) / int64(other))
}

// DivInt divides by an integer. Division by zero yields zero.
func (f Number) DivInt(n int) Number {
	if n == 0 {
		return 0
	}
	return Number(int64(f) / int64(n))
}

// Abs returns absolute value.
func (f Number) Abs() Number {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Number) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi Number) Number {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// String formats the value with four decimals, for logs only.
func (f Number) String() string {
	sign := ""
	v := int64(f)
	if v < 0 {
		sign = "-"
		v = -v
	}
	frac := (v & (Scale - 1)) * 10000 / Scale
	return fmt.Sprintf("%s%d.%04d", sign, v>>FracBits, frac)
}

// Point is a fixed-point 2D vector.
type Point struct {
	X, Y Number
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by s.
func (p Point) Scale(s Number) Point {
	return Point{X: p.X.Mul(s), Y: p.Y.Mul(s)}
}
