package sway

// Vec2 is a 2D vector used for two-axis signals such as positional
// offsets and shake directions.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns the componentwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Scaled returns v with both components multiplied by f.
func (v Vec2) Scaled(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// subIDCounter is a plain counter (no atomic — sway is single-threaded).
var subIDCounter uint32

func nextSubID() uint32 {
	subIDCounter++
	return subIDCounter
}
