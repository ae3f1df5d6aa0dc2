package sway

import "math"

// Policy defines the blending algebra for a value type: how two values
// are compared, folded together, and attenuated. Every Blender seals
// exactly one Policy at construction.
//
// Blend should be associative and commutative enough that fold order
// does not change results visibly; the engine folds in insertion order
// and never reorders. Scale must satisfy Scale(v, 1) == v and is only
// ever called with factors >= 0 (attenuation curve output is clamped
// before use). Equals must be non-nil; Scale may be nil for types with
// no meaningful attenuation (booleans), in which case events contribute
// their raw payload while active.
type Policy[T any] struct {
	Equals func(a, b T) bool
	Blend  func(a, b T) T
	Scale  func(v T, factor float64) T
}

// And returns the boolean policy that folds with logical AND.
func And() Policy[bool] {
	return Policy[bool]{
		Equals: func(a, b bool) bool { return a == b },
		Blend:  func(a, b bool) bool { return a && b },
	}
}

// Or returns the boolean policy that folds with logical OR.
func Or() Policy[bool] {
	return Policy[bool]{
		Equals: func(a, b bool) bool { return a == b },
		Blend:  func(a, b bool) bool { return a || b },
	}
}

// Additive returns the scalar policy that sums contributions.
func Additive() Policy[float64] {
	return Policy[float64]{
		Equals: func(a, b float64) bool { return a == b },
		Blend:  func(a, b float64) float64 { return a + b },
		Scale:  func(v, f float64) float64 { return v * f },
	}
}

// Multiply returns the scalar policy that multiplies contributions.
func Multiply() Policy[float64] {
	return Policy[float64]{
		Equals: func(a, b float64) bool { return a == b },
		Blend:  func(a, b float64) float64 { return a * b },
		Scale:  func(v, f float64) float64 { return v * f },
	}
}

// Max returns the scalar policy that keeps the largest contribution.
func Max() Policy[float64] {
	return Policy[float64]{
		Equals: func(a, b float64) bool { return a == b },
		Blend:  math.Max,
		Scale:  func(v, f float64) float64 { return v * f },
	}
}

// Min returns the scalar policy that keeps the smallest contribution.
func Min() Policy[float64] {
	return Policy[float64]{
		Equals: func(a, b float64) bool { return a == b },
		Blend:  math.Min,
		Scale:  func(v, f float64) float64 { return v * f },
	}
}

// AdditiveVec2 returns the two-axis policy that sums componentwise.
func AdditiveVec2() Policy[Vec2] {
	return Policy[Vec2]{
		Equals: func(a, b Vec2) bool { return a == b },
		Blend:  Vec2.Add,
		Scale:  Vec2.Scaled,
	}
}

// MultiplyVec2 returns the two-axis policy that multiplies componentwise.
func MultiplyVec2() Policy[Vec2] {
	return Policy[Vec2]{
		Equals: func(a, b Vec2) bool { return a == b },
		Blend:  Vec2.Mul,
		Scale:  Vec2.Scaled,
	}
}

// MaxVec2 returns the two-axis policy that keeps the componentwise maximum.
func MaxVec2() Policy[Vec2] {
	return Policy[Vec2]{
		Equals: func(a, b Vec2) bool { return a == b },
		Blend: func(a, b Vec2) Vec2 {
			return Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
		},
		Scale: Vec2.Scaled,
	}
}

// MinVec2 returns the two-axis policy that keeps the componentwise minimum.
func MinVec2() Policy[Vec2] {
	return Policy[Vec2]{
		Equals: func(a, b Vec2) bool { return a == b },
		Blend: func(a, b Vec2) Vec2 {
			return Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
		},
		Scale: Vec2.Scaled,
	}
}
